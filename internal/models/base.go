package models

import "time"

// BaseModel is gorm.Model without DeletedAt. Deletes must be hard deletes so
// the ON DELETE CASCADE constraints actually remove dependent rows.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
