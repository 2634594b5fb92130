package models

type PermitModel struct {
	ID              uint   `gorm:"primaryKey"`
	Number          string `gorm:"uniqueIndex;size:50;not null"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text"`
	PermitType      string `gorm:"size:20;not null;index"`
	Direction       string `gorm:"size:20;not null"`
	Status          string `gorm:"size:20;not null;index"`
	TenantID        uint   `gorm:"not null;index"`
	CreatedByID     *uint  `gorm:"index"`
	CompanyName     string `gorm:"size:200"`
	ContactPerson   string `gorm:"size:100"`
	ContactPhone    string `gorm:"size:50"`
	RequestedDate   int64  `gorm:"not null"`
	StartDate       *int64
	EndDate         *int64
	Notes           string `gorm:"type:text"`
	RejectionReason string `gorm:"type:text"`
	CreatedAt       int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (PermitModel) TableName() string {
	return "permits"
}

type ApprovalWorkflowModel struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"size:100;not null"`
	PermitType       *string `gorm:"size:20;index"`
	ApproverID       uint    `gorm:"not null"`
	BackupApproverID *uint
	DeadlineHours    int   `gorm:"not null;default:24"`
	AutoRedirect     bool  `gorm:"not null;default:true"`
	NotifyAdmin      bool  `gorm:"not null;default:true"`
	IsActive         bool  `gorm:"not null;default:true;index"`
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ApprovalWorkflowModel) TableName() string {
	return "approval_workflows"
}

type PendingApprovalModel struct {
	ID             uint  `gorm:"primaryKey"`
	PermitID       uint  `gorm:"not null;index"`
	WorkflowID     uint  `gorm:"not null;index"`
	AssignedToID   uint  `gorm:"not null;index"`
	Deadline       int64 `gorm:"not null;index"`
	IsOverdue      bool  `gorm:"not null;default:false"`
	Redirected     bool  `gorm:"not null;default:false;index"`
	RedirectedAt   *int64
	RedirectedToID *uint
	AdminNotified  bool  `gorm:"not null;default:false"`
	Completed      bool  `gorm:"not null;default:false;index"`
	CompletedAt    *int64
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (PendingApprovalModel) TableName() string {
	return "pending_approvals"
}

type ApprovalRecordModel struct {
	ID             uint   `gorm:"primaryKey"`
	PermitID       uint   `gorm:"not null;index"`
	ActorID        uint   `gorm:"not null;index"`
	Action         string `gorm:"size:20;not null"`
	Comments       string `gorm:"type:text"`
	RedirectedToID *uint
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (ApprovalRecordModel) TableName() string {
	return "permit_approvals"
}
