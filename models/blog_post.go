package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostStatus string

const (
	StatusOnReview  BlogPostStatus = "ON_REVIEW"
	StatusPublished BlogPostStatus = "PUBLISHED"
	StatusRejected  BlogPostStatus = "REJECTED"
)

type BlogPostDecision string

const (
	DecisionPublish BlogPostDecision = "PUBLISH"
	DecisionReject  BlogPostDecision = "REJECT"
)

// BlogPost status only changes through the moderation workflow. Any edit by
// the publisher forces it back to ON_REVIEW.
type BlogPost struct {
	ID          string         `json:"id" gorm:"type:uuid;primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"not null"`
	Status      BlogPostStatus `json:"status" gorm:"type:varchar(20);not null;default:'ON_REVIEW'"`
	Avatar      string         `json:"avatar"`
	BlogID      string         `json:"blog_id" gorm:"type:uuid;not null"`
	Blog        Blog           `json:"blog" gorm:"foreignKey:BlogID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
