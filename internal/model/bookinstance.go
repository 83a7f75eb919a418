package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

type BookInstance struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Book      *Book      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Imprint   string     `gorm:"not null"`
	Status    string     `gorm:"not null;default:Maintenance;index"`
	DueBack   *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) (err error) {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstances/" + bi.ID.String()
}

// DueBackFormatted renders the due date as "Jan 2, 2006", or "" when unset.
func (bi BookInstance) DueBackFormatted() string {
	if bi.DueBack == nil {
		return ""
	}
	return bi.DueBack.Format("Jan 2, 2006")
}
