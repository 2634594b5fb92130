package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"amlak/internal/domain/permit"
	"amlak/internal/infrastructure/persistence/models"
	db "amlak/internal/shared/db"
)

// PermitNumberGenerator derives the next PRM-NNN number from the highest
// number already stored. The permits.number unique index catches the rare
// race between two concurrent creations.
type PermitNumberGenerator struct {
	db *gorm.DB
}

func NewPermitNumberGenerator(gdb *gorm.DB) *PermitNumberGenerator {
	return &PermitNumberGenerator{db: gdb}
}

func (g *PermitNumberGenerator) Generate(ctx context.Context) (string, error) {
	tx := db.GetTxFromContext(ctx, g.db)

	var last string
	err := tx.
		Model(&models.PermitModel{}).
		Select("number").
		Order("id DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", fmt.Errorf("failed to read last permit number: %w", err)
	}

	seq := 0
	if last != "" {
		if idx := strings.LastIndex(last, "-"); idx >= 0 {
			if n, err := strconv.Atoi(last[idx+1:]); err == nil {
				seq = n
			}
		}
	}

	return permit.FormatNumber(seq + 1), nil
}
