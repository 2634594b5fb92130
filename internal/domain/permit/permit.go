package permit

import (
	"fmt"
	"time"

	vo "amlak/internal/domain/permit/valueobjects"
)

// Permit is the request entity tracked by the approval workflow. A permit
// starts pending and is settled exactly once: approved, rejected or
// cancelled. Settled permits are never deleted.
type Permit struct {
	id              uint
	number          string
	permitType      vo.PermitType
	direction       vo.Direction
	status          vo.PermitStatus
	title           string
	description     string
	companyName     string
	contactPerson   string
	contactPhone    string
	tenantID        uint
	createdByID     *uint
	requestedDate   time.Time
	startDate       *time.Time
	endDate         *time.Time
	notes           string
	rejectionReason string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPermit(
	title string,
	description string,
	permitType vo.PermitType,
	direction vo.Direction,
	tenantID uint,
	createdByID *uint,
	requestedDate time.Time,
) (*Permit, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !permitType.IsValid() {
		return nil, fmt.Errorf("invalid permit type")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if requestedDate.IsZero() {
		return nil, fmt.Errorf("requested date is required")
	}

	now := time.Now()

	return &Permit{
		title:         title,
		description:   description,
		permitType:    permitType,
		direction:     direction,
		status:        vo.StatusPending,
		tenantID:      tenantID,
		createdByID:   createdByID,
		requestedDate: requestedDate,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPermit(
	id uint,
	number string,
	title string,
	description string,
	permitType vo.PermitType,
	direction vo.Direction,
	status vo.PermitStatus,
	tenantID uint,
	createdByID *uint,
	companyName string,
	contactPerson string,
	contactPhone string,
	requestedDate time.Time,
	startDate, endDate *time.Time,
	notes string,
	rejectionReason string,
	createdAt, updatedAt time.Time,
) (*Permit, error) {
	if id == 0 {
		return nil, fmt.Errorf("permit ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("permit number is required")
	}
	if !permitType.IsValid() {
		return nil, fmt.Errorf("invalid permit type")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid permit status")
	}

	return &Permit{
		id:              id,
		number:          number,
		title:           title,
		description:     description,
		permitType:      permitType,
		direction:       direction,
		status:          status,
		tenantID:        tenantID,
		createdByID:     createdByID,
		companyName:     companyName,
		contactPerson:   contactPerson,
		contactPhone:    contactPhone,
		requestedDate:   requestedDate,
		startDate:       startDate,
		endDate:         endDate,
		notes:           notes,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Permit) ID() uint {
	return p.id
}

func (p *Permit) Number() string {
	return p.number
}

func (p *Permit) Title() string {
	return p.title
}

func (p *Permit) Description() string {
	return p.description
}

func (p *Permit) Type() vo.PermitType {
	return p.permitType
}

func (p *Permit) Direction() vo.Direction {
	return p.direction
}

func (p *Permit) Status() vo.PermitStatus {
	return p.status
}

func (p *Permit) TenantID() uint {
	return p.tenantID
}

func (p *Permit) CreatedByID() *uint {
	return p.createdByID
}

func (p *Permit) CompanyName() string {
	return p.companyName
}

func (p *Permit) ContactPerson() string {
	return p.contactPerson
}

func (p *Permit) ContactPhone() string {
	return p.contactPhone
}

func (p *Permit) RequestedDate() time.Time {
	return p.requestedDate
}

func (p *Permit) StartDate() *time.Time {
	return p.startDate
}

func (p *Permit) EndDate() *time.Time {
	return p.endDate
}

func (p *Permit) Notes() string {
	return p.notes
}

func (p *Permit) RejectionReason() string {
	return p.rejectionReason
}

func (p *Permit) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permit) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Permit) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permit ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permit ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Permit) SetNumber(number string) error {
	if len(p.number) > 0 {
		return fmt.Errorf("permit number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("permit number cannot be empty")
	}
	p.number = number
	return nil
}

// SetContact fills the optional contact block.
func (p *Permit) SetContact(companyName, contactPerson, contactPhone string) {
	p.companyName = companyName
	p.contactPerson = contactPerson
	p.contactPhone = contactPhone
	p.updatedAt = time.Now()
}

// SetValidityWindow sets the optional start/end dates of the permit.
func (p *Permit) SetNotes(notes string) {
	p.notes = notes
	p.updatedAt = time.Now()
}

func (p *Permit) SetValidityWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("end date cannot be before start date")
	}
	p.startDate = start
	p.endDate = end
	p.updatedAt = time.Now()
	return nil
}

// Approve settles the permit as approved.
func (p *Permit) Approve() error {
	if !p.status.CanTransitionTo(vo.StatusApproved) {
		return fmt.Errorf("cannot approve permit with status %s", p.status)
	}
	p.status = vo.StatusApproved
	p.updatedAt = time.Now()
	return nil
}

// Reject settles the permit as rejected, recording the reason.
func (p *Permit) Reject(reason string) error {
	if !p.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject permit with status %s", p.status)
	}
	p.status = vo.StatusRejected
	p.rejectionReason = reason
	p.updatedAt = time.Now()
	return nil
}

// Cancel withdraws a pending permit.
func (p *Permit) Cancel() error {
	if !p.status.CanTransitionTo(vo.StatusCancelled) {
		return fmt.Errorf("cannot cancel permit with status %s", p.status)
	}
	p.status = vo.StatusCancelled
	p.updatedAt = time.Now()
	return nil
}

func (p *Permit) Validate() error {
	if len(p.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if !p.permitType.IsValid() {
		return fmt.Errorf("invalid permit type")
	}
	if !p.direction.IsValid() {
		return fmt.Errorf("invalid direction")
	}
	if !p.status.IsValid() {
		return fmt.Errorf("invalid permit status")
	}
	if p.tenantID == 0 {
		return fmt.Errorf("tenant ID is required")
	}
	return nil
}
