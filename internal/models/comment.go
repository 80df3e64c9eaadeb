package models

type Comment struct {
	BaseModel

	Message string `gorm:"type:text"`
	UserID  uint   `gorm:"not null;index"`
	CardID  uint   `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
