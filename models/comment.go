package models

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID    string    `json:"postId" gorm:"column:post_id;type:uuid;not null"`
	UserID    string    `json:"-" gorm:"column:user_id;type:uuid;not null"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentCreate model for adding a comment
type CommentCreate struct {
	Text string `json:"text"`
}

// CommentView is a comment with the commenting user joined in.
type CommentView struct {
	Comment
	User PublicUser `json:"user"`
}

func (Comment) TableName() string {
	return "comments"
}
