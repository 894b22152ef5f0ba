package users

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"

	"github.com/gin-gonic/gin"
)

// ActivityEvent is one normalized entry of the dashboard activity
// feed.
type ActivityEvent struct {
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Timestamp   time.Time          `json:"timestamp"`
	Post        *ActivityPostRef   `json:"post,omitempty"`
	Commenter   *models.PublicUser `json:"commenter,omitempty"`
	Subscriber  *models.PublicUser `json:"subscriber,omitempty"`
	Tier        *ActivityTierRef   `json:"tier,omitempty"`
}

type ActivityPostRef struct {
	ID          string `json:"id"`
	TextSnippet string `json:"textSnippet"`
	CreatorName string `json:"creatorName"`
}

type ActivityTierRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

const activityWindow = 30 * 24 * time.Hour
const activityLimit = 20

// @Summary Recent activity
// @Description New subscriptions to the viewer's tiers and comments on their posts over the last 30 days, merged newest-first, at most 20 entries
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "activity"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/activity [get]
func GetActivity(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	threshold := time.Now().Add(-activityWindow)
	activity := []ActivityEvent{}

	subEvents, err := recentSubscriptionEvents(userID.(string), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	activity = append(activity, subEvents...)

	commentEvents, err := recentCommentEvents(userID.(string), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	activity = append(activity, commentEvents...)

	sort.SliceStable(activity, func(i, j int) bool {
		return activity[i].Timestamp.After(activity[j].Timestamp)
	})
	if len(activity) > activityLimit {
		activity = activity[:activityLimit]
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

func recentSubscriptionEvents(creatorID string, threshold time.Time) ([]ActivityEvent, error) {
	var rows []struct {
		StartDate      time.Time
		SubscriberID   string
		SubscriberName string
		SubscriberPic  string
		TierID         string
		TierName       string
	}
	err := db.DB.Model(&models.Subscription{}).
		Select("subscriptions.start_date, users.id AS subscriber_id, users.name AS subscriber_name, " +
			"users.profile_pic AS subscriber_pic, tiers.id AS tier_id, tiers.name AS tier_name").
		Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.status = ? AND subscriptions.start_date >= ? AND tiers.creator_id = ?",
			models.SubscriptionActive, threshold, creatorID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]ActivityEvent, 0, len(rows))
	for _, row := range rows {
		name := row.SubscriberName
		if name == "" {
			name = "Someone"
		}
		events = append(events, ActivityEvent{
			Type:        "new_subscription",
			Description: fmt.Sprintf("%s subscribed to your tier %q!", name, row.TierName),
			Timestamp:   row.StartDate,
			Subscriber: &models.PublicUser{
				ID:         row.SubscriberID,
				Name:       row.SubscriberName,
				ProfilePic: row.SubscriberPic,
			},
			Tier: &ActivityTierRef{ID: row.TierID, Name: row.TierName},
		})
	}
	return events, nil
}

func recentCommentEvents(creatorID string, threshold time.Time) ([]ActivityEvent, error) {
	var rows []struct {
		CreatedAt     time.Time
		CommenterID   string
		CommenterName string
		CommenterPic  string
		PostID        string
		PostText      string
		CreatorName   string
	}
	err := db.DB.Model(&models.Comment{}).
		Select("comments.created_at, users.id AS commenter_id, users.name AS commenter_name, " +
			"users.profile_pic AS commenter_pic, posts.id AS post_id, posts.text AS post_text, " +
			"posts.creator_name").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("posts.creator_id = ? AND comments.created_at >= ?", creatorID, threshold).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]ActivityEvent, 0, len(rows))
	for _, row := range rows {
		name := row.CommenterName
		if name == "" {
			name = "Someone"
		}
		snippet := postSnippet(row.PostText)
		events = append(events, ActivityEvent{
			Type:        "new_comment",
			Description: fmt.Sprintf("%s commented on your post %q", name, snippet),
			Timestamp:   row.CreatedAt,
			Post: &ActivityPostRef{
				ID:          row.PostID,
				TextSnippet: snippet,
				CreatorName: row.CreatorName,
			},
			Commenter: &models.PublicUser{
				ID:         row.CommenterID,
				Name:       row.CommenterName,
				ProfilePic: row.CommenterPic,
			},
		})
	}
	return events, nil
}

func postSnippet(text string) string {
	if text == "" {
		return "Post"
	}
	if len(text) > 50 {
		text = text[:50]
	}
	return text + "..."
}
