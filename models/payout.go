package models

import (
	"time"
)

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutCompleted PayoutStatus = "completed"
	PayoutFailed    PayoutStatus = "failed"
)

type Payout struct {
	ID            string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID     string       `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	Amount        float64      `json:"amount"`
	PaymentMethod string       `json:"paymentMethod" gorm:"column:payment_method"`
	Status        PayoutStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	RequestDate   time.Time    `json:"requestDate" gorm:"column:request_date"`
	ProcessedDate *time.Time   `json:"processedDate,omitempty" gorm:"column:processed_date"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// PayoutCreate model for requesting a payout
type PayoutCreate struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

func (Payout) TableName() string {
	return "payouts"
}
