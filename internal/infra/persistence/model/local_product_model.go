package model

import (
	"time"

	"gorm.io/datatypes"
)

// LocalProductModel is the GORM-specific struct for the 'local_products' snapshot table.
type LocalProductModel struct {
	ID          string                      `gorm:"type:varchar(128);primaryKey"`
	OwnerID     string                      `gorm:"type:varchar(128);not null;index:idx_local_products_on_owner"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text;not null"`
	Image       string                      `gorm:"type:text;not null"`
	Status      string                      `gorm:"type:varchar(64);not null"`
	Price       int                         `gorm:"not null"`
	BaseBid     int                         `gorm:"not null"`
	Category    string                      `gorm:"type:varchar(128);not null;index"`
	Types       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ListedAt    time.Time                   // Creation time in the remote store
	CreatedAt   time.Time                   // First time the row entered the snapshot
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocalProductModel) TableName() string {
	return "local_products"
}
