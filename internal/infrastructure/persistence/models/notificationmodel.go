package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_user_read"`
	Type      string `gorm:"size:20;not null"`
	Title     string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text;not null"`
	Link      string `gorm:"size:255"`
	Metadata  datatypes.JSON
	IsRead    bool `gorm:"not null;default:false;index:idx_user_read"`
	ReadAt    *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
