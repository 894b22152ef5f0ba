package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

type Subscription struct {
	ID           string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubscriberID string             `json:"subscriberId" gorm:"column:subscriber_id;type:uuid;not null"`
	TierID       string             `json:"tierId" gorm:"column:tier_id;type:uuid;not null"`
	Status       SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	StartDate    time.Time          `json:"startDate" gorm:"column:start_date"`
	EndDate      *time.Time         `json:"endDate" gorm:"column:end_date"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// SubscriptionCreate model for subscribing to a tier
type SubscriptionCreate struct {
	TierID string `json:"tierId" binding:"required"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
