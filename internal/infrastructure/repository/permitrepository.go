package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"amlak/internal/domain/permit"
	"amlak/internal/infrastructure/persistence/mappers"
	"amlak/internal/infrastructure/persistence/models"
	db "amlak/internal/shared/db"
)

// allowedPermitOrderByFields is the whitelist of ORDER BY fields.
var allowedPermitOrderByFields = map[string]bool{
	"id":             true,
	"number":         true,
	"title":          true,
	"permit_type":    true,
	"status":         true,
	"tenant_id":      true,
	"requested_date": true,
	"created_at":     true,
	"updated_at":     true,
}

type PermitRepository struct {
	db     *gorm.DB
	mapper mappers.PermitMapper
}

func NewPermitRepository(gdb *gorm.DB) *PermitRepository {
	return &PermitRepository{
		db:     gdb,
		mapper: mappers.NewPermitMapper(),
	}
}

func (r *PermitRepository) Save(ctx context.Context, p *permit.Permit) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save permit: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PermitRepository) Update(ctx context.Context, p *permit.Permit) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PermitModel{}).
		Where("id = ?", model.ID).
		Select("Status", "RejectionReason", "Notes", "CompanyName", "ContactPerson", "ContactPhone", "StartDate", "EndDate", "UpdatedAt").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update permit: %w", result.Error)
	}

	return nil
}

func (r *PermitRepository) FindByID(ctx context.Context, permitID uint) (*permit.Permit, error) {
	var model models.PermitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, permitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find permit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PermitRepository) FindByNumber(ctx context.Context, number string) (*permit.Permit, error) {
	var model models.PermitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("number = ?", number).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find permit by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PermitRepository) List(ctx context.Context, filter permit.PermitFilter) ([]*permit.Permit, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PermitModel{})

	if filter.Type != nil {
		query = query.Where("permit_type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Direction != nil {
		query = query.Where("direction = ?", filter.Direction.String())
	}
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("number LIKE ? OR title LIKE ? OR company_name LIKE ?", search, search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count permits: %w", err)
	}

	query = query.Order(buildPermitOrderBy(filter.SortBy, filter.SortOrder))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var permitModels []models.PermitModel
	if err := query.Find(&permitModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list permits: %w", err)
	}

	permits := make([]*permit.Permit, 0, len(permitModels))
	for i := range permitModels {
		p, err := r.mapper.ToDomain(&permitModels[i])
		if err != nil {
			return nil, 0, err
		}
		permits = append(permits, p)
	}

	return permits, total, nil
}

func buildPermitOrderBy(sortBy, sortOrder string) string {
	field := "created_at"
	if allowedPermitOrderByFields[sortBy] {
		field = sortBy
	}

	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}

	return fmt.Sprintf("%s %s", field, order)
}
