package model

import (
	"time"
)

// LocalUserModel is the GORM-specific struct for the 'local_users' snapshot table.
type LocalUserModel struct {
	ID        string   `gorm:"type:varchar(128);primaryKey"`
	Name      string   `gorm:"type:varchar(255);not null"`
	Email     string   `gorm:"type:varchar(255);not null"`
	Phone     string   `gorm:"type:varchar(64);not null"`
	Image     string   `gorm:"type:text;not null"`
	Latitude  *float64 `gorm:"type:double precision;index:idx_local_users_on_position"`
	Longitude *float64 `gorm:"type:double precision;index:idx_local_users_on_position"`
	UpdatedAt time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocalUserModel) TableName() string {
	return "local_users"
}
