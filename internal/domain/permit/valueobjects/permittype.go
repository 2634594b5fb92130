package valueobjects

import "fmt"

type PermitType string

const (
	TypeGoods       PermitType = "goods"
	TypeMaintenance PermitType = "maintenance"
	TypeMarketing   PermitType = "marketing"
	TypeVisitor     PermitType = "visitor"
	TypeVehicle     PermitType = "vehicle"
	TypeOther       PermitType = "other"
)

var validPermitTypes = map[PermitType]bool{
	TypeGoods:       true,
	TypeMaintenance: true,
	TypeMarketing:   true,
	TypeVisitor:     true,
	TypeVehicle:     true,
	TypeOther:       true,
}

func (t PermitType) String() string {
	return string(t)
}

func (t PermitType) IsValid() bool {
	return validPermitTypes[t]
}

func NewPermitType(s string) (PermitType, error) {
	t := PermitType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid permit type: %s", s)
	}
	return t, nil
}

// AllPermitTypes returns every valid permit type, for validation surfaces
// that need the full enumeration.
func AllPermitTypes() []PermitType {
	return []PermitType{
		TypeGoods,
		TypeMaintenance,
		TypeMarketing,
		TypeVisitor,
		TypeVehicle,
		TypeOther,
	}
}
