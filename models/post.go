package models

import (
	"time"

	"github.com/lib/pq"
)

type PostType string

const (
	PostTypeText       PostType = "text"
	PostTypeMedia      PostType = "media"
	PostTypePoll       PostType = "poll"
	PostTypeFundraiser PostType = "fundraiser"
)

type Post struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatorID     string         `json:"creatorId" gorm:"column:creator_id;type:uuid;not null"`
	CreatorName   string         `json:"creatorName" gorm:"column:creator_name"`
	Type          PostType       `json:"type" gorm:"type:varchar(20);not null"`
	Text          string         `json:"-"`
	Media         []PostMedia    `json:"-" gorm:"foreignKey:PostID"`
	Options       pq.StringArray `json:"-" gorm:"type:text[]"`
	Exclusive     bool           `json:"exclusive" gorm:"default:false"`
	FundingGoal   *float64       `json:"fundingGoal,omitempty" gorm:"column:funding_goal"`
	CurrentAmount float64        `json:"currentAmount" gorm:"column:current_amount;default:0"`
	GoalDeadline  *time.Time     `json:"goalDeadline,omitempty" gorm:"column:goal_deadline"`
	TaggedUsers   pq.StringArray `json:"taggedUsers" gorm:"column:tagged_users;type:text[]"`
	ScheduleTime  *time.Time     `json:"scheduleTime,omitempty" gorm:"column:schedule_time"`
	Likes         int            `json:"likes" gorm:"default:0"`
	LikedBy       pq.StringArray `json:"likedBy" gorm:"column:liked_by;type:text[]"`
	VotedBy       pq.StringArray `json:"votedBy" gorm:"column:voted_by;type:text[]"`
	Comments      []Comment      `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// PostMedia is one uploaded file attached to a media post.
type PostMedia struct {
	ID       string `json:"-" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PostID   string `json:"-" gorm:"column:post_id;type:uuid;not null"`
	Type     string `json:"type" gorm:"type:varchar(10)"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func (Post) TableName() string {
	return "posts"
}

func (PostMedia) TableName() string {
	return "post_media"
}
