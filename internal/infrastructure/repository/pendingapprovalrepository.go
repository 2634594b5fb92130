package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"amlak/internal/domain/permit"
	"amlak/internal/infrastructure/persistence/mappers"
	"amlak/internal/infrastructure/persistence/models"
	db "amlak/internal/shared/db"
)

// PendingApprovalRepository persists the escalation state machine. Every
// transition goes through a guarded UPDATE on `completed = false AND
// redirected = false` so that a concurrent sweep and a concurrent decision
// can never both win the same row.
type PendingApprovalRepository struct {
	db     *gorm.DB
	mapper mappers.PendingApprovalMapper
}

func NewPendingApprovalRepository(gdb *gorm.DB) *PendingApprovalRepository {
	return &PendingApprovalRepository{
		db:     gdb,
		mapper: mappers.NewPendingApprovalMapper(),
	}
}

func (r *PendingApprovalRepository) Save(ctx context.Context, pa *permit.PendingApproval) error {
	model := r.mapper.ToModel(pa)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save pending approval: %w", err)
	}

	if err := pa.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *PendingApprovalRepository) FindByID(ctx context.Context, id uint) (*permit.PendingApproval, error) {
	var model models.PendingApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending approval: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PendingApprovalRepository) FindOpen(ctx context.Context) ([]*permit.PendingApproval, error) {
	var rows []models.PendingApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("completed = ? AND redirected = ?", false, false).
		Order("deadline ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find open pending approvals: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *PendingApprovalRepository) FindActionableByAssignee(ctx context.Context, assigneeID uint) ([]*permit.PendingApproval, error) {
	var rows []models.PendingApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("assigned_to_id = ? AND completed = ?", assigneeID, false).
		Order("deadline ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending approvals for assignee: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *PendingApprovalRepository) FindActionableByPermitID(ctx context.Context, permitID uint) (*permit.PendingApproval, error) {
	var model models.PendingApprovalModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("permit_id = ? AND completed = ?", permitID, false).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pending approval for permit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PendingApprovalRepository) ApplyRedirect(ctx context.Context, pa *permit.PendingApproval) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"is_overdue":       true,
		"redirected":       true,
		"assigned_to_id":   pa.AssignedToID(),
		"redirected_to_id": pa.RedirectedToID(),
		"admin_notified":   pa.AdminNotified(),
		"updated_at":       time.Now().UnixMilli(),
	}
	if pa.RedirectedAt() != nil {
		updates["redirected_at"] = pa.RedirectedAt().UnixMilli()
	}

	result := tx.
		Model(&models.PendingApprovalModel{}).
		Where("id = ? AND completed = ? AND redirected = ?", pa.ID(), false, false).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to redirect pending approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permit.ErrTransitionLost
	}

	return nil
}

func (r *PendingApprovalRepository) MarkOverdue(ctx context.Context, pa *permit.PendingApproval) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PendingApprovalModel{}).
		Where("id = ? AND completed = ? AND redirected = ?", pa.ID(), false, false).
		Updates(map[string]interface{}{
			"is_overdue":     true,
			"admin_notified": pa.AdminNotified(),
			"updated_at":     time.Now().UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark pending approval overdue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permit.ErrTransitionLost
	}

	return nil
}

func (r *PendingApprovalRepository) Complete(ctx context.Context, pa *permit.PendingApproval) error {
	tx := db.GetTxFromContext(ctx, r.db)

	updates := map[string]interface{}{
		"completed":  true,
		"updated_at": time.Now().UnixMilli(),
	}
	if pa.CompletedAt() != nil {
		updates["completed_at"] = pa.CompletedAt().UnixMilli()
	}

	// Redirected rows stay completable: the backup approver owns them.
	result := tx.
		Model(&models.PendingApprovalModel{}).
		Where("id = ? AND completed = ?", pa.ID(), false).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to complete pending approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return permit.ErrTransitionLost
	}

	return nil
}

func (r *PendingApprovalRepository) toDomainList(rows []models.PendingApprovalModel) ([]*permit.PendingApproval, error) {
	approvals := make([]*permit.PendingApproval, 0, len(rows))
	for i := range rows {
		pa, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		approvals = append(approvals, pa)
	}
	return approvals, nil
}
