package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"amlak/internal/domain/permit"
	"amlak/internal/infrastructure/persistence/mappers"
	"amlak/internal/infrastructure/persistence/models"
	db "amlak/internal/shared/db"
)

type ApprovalRecordRepository struct {
	db     *gorm.DB
	mapper mappers.ApprovalRecordMapper
}

func NewApprovalRecordRepository(gdb *gorm.DB) *ApprovalRecordRepository {
	return &ApprovalRecordRepository{
		db:     gdb,
		mapper: mappers.NewApprovalRecordMapper(),
	}
}

func (r *ApprovalRecordRepository) Save(ctx context.Context, record *permit.ApprovalRecord) error {
	model := r.mapper.ToModel(record)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save approval record: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ApprovalRecordRepository) FindByPermitID(ctx context.Context, permitID uint) ([]*permit.ApprovalRecord, error) {
	var rows []models.ApprovalRecordModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("permit_id = ?", permitID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find approval records: %w", err)
	}

	records := make([]*permit.ApprovalRecord, 0, len(rows))
	for i := range rows {
		record, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
