package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is owned by its publisher. (publisher, name) uniqueness is checked in
// the service layer, not enforced by the database.
type Blog struct {
	ID          string     `json:"id" gorm:"type:uuid;primarykey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	PublisherID string     `json:"publisher_id" gorm:"type:uuid;not null"`
	Publisher   User       `json:"publisher" gorm:"foreignKey:PublisherID"`
	Posts       []BlogPost `json:"posts,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
