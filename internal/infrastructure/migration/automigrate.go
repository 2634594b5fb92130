package migration

import (
	"amlak/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PermitModel{},
		&models.ApprovalWorkflowModel{},
		&models.PendingApprovalModel{},
		&models.ApprovalRecordModel{},
		&models.NotificationModel{},
	}
}
