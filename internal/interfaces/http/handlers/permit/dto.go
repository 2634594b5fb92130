package permit

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"amlak/internal/application/permit/usecases"
	"amlak/internal/shared/constants"
	"amlak/internal/shared/errors"
)

type CreatePermitRequest struct {
	Type          string     `json:"type" binding:"required,oneof=goods maintenance marketing visitor vehicle other"`
	Direction     string     `json:"direction" binding:"required,oneof=send receive"`
	Title         string     `json:"title" binding:"required,max=200"`
	Description   string     `json:"description" binding:"max=5000"`
	CompanyName   string     `json:"company_name" binding:"max=200"`
	ContactPerson string     `json:"contact_person" binding:"max=100"`
	ContactPhone  string     `json:"contact_phone" binding:"max=50"`
	TenantID      uint       `json:"tenant_id" binding:"required"`
	RequestedDate *time.Time `json:"requested_date"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

func (r *CreatePermitRequest) ToCommand(creatorID uint) usecases.CreatePermitCommand {
	requestedDate := time.Now()
	if r.RequestedDate != nil {
		requestedDate = *r.RequestedDate
	}

	var createdBy *uint
	if creatorID != 0 {
		createdBy = &creatorID
	}

	return usecases.CreatePermitCommand{
		Type:          r.Type,
		Direction:     r.Direction,
		Title:         r.Title,
		Description:   r.Description,
		CompanyName:   r.CompanyName,
		ContactPerson: r.ContactPerson,
		ContactPhone:  r.ContactPhone,
		TenantID:      r.TenantID,
		CreatedByID:   createdBy,
		RequestedDate: requestedDate,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Notes:         r.Notes,
	}
}

type DecidePermitRequest struct {
	Action   string `json:"action" binding:"required,oneof=approved rejected"`
	Comments string `json:"comments" binding:"max=2000"`
}

type ListPermitsRequest struct {
	Type      string
	Status    string
	Direction string
	TenantID  *uint
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (r *ListPermitsRequest) ToCommand() usecases.ListPermitsCommand {
	return usecases.ListPermitsCommand{
		Type:      r.Type,
		Status:    r.Status,
		Direction: r.Direction,
		TenantID:  r.TenantID,
		Search:    r.Search,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseListPermitsRequest(c *gin.Context) (*ListPermitsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	req := &ListPermitsRequest{
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		Direction: c.Query("direction"),
		Search:    c.Query("search"),
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		tenantID, err := strconv.ParseUint(tenantIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid tenant_id")
		}
		id := uint(tenantID)
		req.TenantID = &id
	}

	return req, nil
}

func parsePermitID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid permit ID")
	}
	return uint(id), nil
}
