package models

import (
	"time"

	"github.com/lib/pq"
)

type Tier struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID string         `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	Name      string         `json:"name" binding:"required"`
	Price     float64        `json:"price"`
	Benefits  pq.StringArray `json:"benefits" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TierCreate model for creating a membership tier
type TierCreate struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Benefits []string `json:"benefits"`
}

func (Tier) TableName() string {
	return "tiers"
}
