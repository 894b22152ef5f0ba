package models

import (
	"time"
)

// LockedPostText replaces the content of an exclusive post when the
// viewer is not subscribed to its creator.
const LockedPostText = "Exclusive content. Subscribe to view."

// PostContent groups the variant part of a post as served to clients.
type PostContent struct {
	Text    string      `json:"text"`
	Media   []PostMedia `json:"media"`
	Options []string    `json:"options"`
}

// PostView is the API representation of a post. Locked views carry
// placeholder content and IsLocked set.
type PostView struct {
	ID            string        `json:"id"`
	CreatorID     string        `json:"creatorId"`
	CreatorName   string        `json:"creatorName"`
	Creator       *PublicUser   `json:"creator,omitempty"`
	Type          PostType      `json:"type"`
	Content       PostContent   `json:"content"`
	Exclusive     bool          `json:"exclusive"`
	FundingGoal   *float64      `json:"fundingGoal,omitempty"`
	CurrentAmount *float64      `json:"currentAmount,omitempty"`
	GoalDeadline  *time.Time    `json:"goalDeadline,omitempty"`
	TaggedUsers   []string      `json:"taggedUsers"`
	ScheduleTime  *time.Time    `json:"scheduleTime,omitempty"`
	Likes         int           `json:"likes"`
	LikedBy       []string      `json:"likedBy"`
	VotedBy       []string      `json:"votedBy"`
	Comments      []CommentView `json:"comments"`
	CreatedAt     time.Time     `json:"createdAt"`
	IsLocked      bool          `json:"isLocked,omitempty"`
}
