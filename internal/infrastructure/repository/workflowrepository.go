package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"amlak/internal/domain/permit"
	vo "amlak/internal/domain/permit/valueobjects"
	"amlak/internal/infrastructure/persistence/mappers"
	"amlak/internal/infrastructure/persistence/models"
	db "amlak/internal/shared/db"
)

type WorkflowRepository struct {
	db     *gorm.DB
	mapper mappers.ApprovalWorkflowMapper
}

func NewWorkflowRepository(gdb *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{
		db:     gdb,
		mapper: mappers.NewApprovalWorkflowMapper(),
	}
}

func (r *WorkflowRepository) Save(ctx context.Context, w *permit.ApprovalWorkflow) error {
	model := r.mapper.ToModel(w)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save approval workflow: %w", err)
	}

	if err := w.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *WorkflowRepository) FindByID(ctx context.Context, workflowID uint) (*permit.ApprovalWorkflow, error) {
	var model models.ApprovalWorkflowModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, workflowID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approval workflow: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindRouteForType prefers the oldest active exact-type workflow, then the
// oldest active wildcard one. The smallest-ID ordering keeps routing
// deterministic when admins configure overlapping workflows.
func (r *WorkflowRepository) FindRouteForType(ctx context.Context, t vo.PermitType) (*permit.ApprovalWorkflow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ApprovalWorkflowModel
	err := tx.
		Where("is_active = ? AND permit_type = ?", true, t.String()).
		Order("id ASC").
		First(&model).Error
	if err == nil {
		return r.mapper.ToDomain(&model)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to route permit type: %w", err)
	}

	err = tx.
		Where("is_active = ? AND permit_type IS NULL", true).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to route permit type: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *WorkflowRepository) ListActive(ctx context.Context) ([]*permit.ApprovalWorkflow, error) {
	var rows []models.ApprovalWorkflowModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active workflows: %w", err)
	}

	workflows := make([]*permit.ApprovalWorkflow, 0, len(rows))
	for i := range rows {
		w, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, w)
	}

	return workflows, nil
}
