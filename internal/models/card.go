package models

import "time"

type Card struct {
	BaseModel

	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"type:date;not null"` // creation date, set server-side
	Status      string
	Priority    string
	UserID      uint `gorm:"not null;index"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
