package models

import (
	"time"
)

type AttachmentType string

const (
	AttachmentImage AttachmentType = "image"
	AttachmentVideo AttachmentType = "video"
	AttachmentFile  AttachmentType = "file"
)

// Message is a directed message between two users. Content is text,
// an attachment, or both.
type Message struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SenderID       string         `json:"senderId" gorm:"column:sender_id;type:uuid;not null"`
	RecipientID    string         `json:"recipientId" gorm:"column:recipient_id;type:uuid;not null"`
	Text           string         `json:"text"`
	AttachmentURL  string         `json:"attachmentUrl" gorm:"column:attachment_url"`
	AttachmentType AttachmentType `json:"attachmentType" gorm:"column:attachment_type;type:varchar(10)"`
	CreatedAt      time.Time      `json:"timestamp"`
}

// MessageContent is the content part of a send-message request.
type MessageContent struct {
	Text           string `json:"text"`
	AttachmentURL  string `json:"attachmentUrl"`
	AttachmentType string `json:"attachmentType"`
}

// MessageCreate model for sending a message
type MessageCreate struct {
	RecipientID string         `json:"recipientId" binding:"required"`
	Content     MessageContent `json:"content"`
}

// Conversation is one row of the derived conversation list: the
// counterpart plus a preview of the latest message.
type Conversation struct {
	ID            string    `json:"id"`
	OtherUserID   string    `json:"otherUserId"`
	OtherUserName string    `json:"otherUserName"`
	OtherUserPic  string    `json:"otherUserPic"`
	LastMessage   string    `json:"lastMessage"`
	Timestamp     time.Time `json:"timestamp"`
}

func (Message) TableName() string {
	return "messages"
}
