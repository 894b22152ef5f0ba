package posts

import (
	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
)

// HasActiveSubscription reports whether viewerID holds an active
// subscription to any tier owned by creatorID.
func HasActiveSubscription(viewerID, creatorID string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.Subscription{}).
		Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Where("subscriptions.subscriber_id = ? AND subscriptions.status = ? AND tiers.creator_id = ?",
			viewerID, models.SubscriptionActive, creatorID).
		Count(&count).Error
	return count > 0, err
}

// FullView builds the unredacted API representation of a post. The
// post must have Media and Comments loaded.
func FullView(post models.Post) models.PostView {
	currentAmount := post.CurrentAmount
	view := models.PostView{
		ID:            post.ID,
		CreatorID:     post.CreatorID,
		CreatorName:   post.CreatorName,
		Type:          post.Type,
		Content: models.PostContent{
			Text:    post.Text,
			Media:   post.Media,
			Options: post.Options,
		},
		Exclusive:     post.Exclusive,
		FundingGoal:   post.FundingGoal,
		CurrentAmount: &currentAmount,
		GoalDeadline:  post.GoalDeadline,
		TaggedUsers:   post.TaggedUsers,
		ScheduleTime:  post.ScheduleTime,
		Likes:         post.Likes,
		LikedBy:       post.LikedBy,
		VotedBy:       post.VotedBy,
		Comments:      joinCommentUsers(post.Comments),
		CreatedAt:     post.CreatedAt,
	}
	if view.Content.Media == nil {
		view.Content.Media = []models.PostMedia{}
	}
	if view.Content.Options == nil {
		view.Content.Options = []string{}
	}
	if view.Comments == nil {
		view.Comments = []models.CommentView{}
	}
	return view
}

// LockedView builds the redacted representation served to viewers
// without access to an exclusive post. Engagement counters stay
// visible, content does not.
func LockedView(post models.Post) models.PostView {
	view := models.PostView{
		ID:          post.ID,
		CreatorID:   post.CreatorID,
		CreatorName: post.CreatorName,
		Type:        post.Type,
		Content: models.PostContent{
			Text:    models.LockedPostText,
			Media:   []models.PostMedia{},
			Options: []string{},
		},
		Exclusive:    post.Exclusive,
		TaggedUsers:  post.TaggedUsers,
		ScheduleTime: post.ScheduleTime,
		Likes:        post.Likes,
		LikedBy:      post.LikedBy,
		VotedBy:      post.VotedBy,
		Comments:     []models.CommentView{},
		CreatedAt:    post.CreatedAt,
		IsLocked:     true,
	}
	return view
}

// ViewFor applies the access rule: non-exclusive posts and the
// creator's own posts pass through, everything else requires an
// active subscription to the post's creator.
func ViewFor(post models.Post, viewerID string) (models.PostView, error) {
	if !post.Exclusive || post.CreatorID == viewerID {
		return FullView(post), nil
	}

	subscribed, err := HasActiveSubscription(viewerID, post.CreatorID)
	if err != nil {
		return models.PostView{}, err
	}
	if !subscribed {
		return LockedView(post), nil
	}
	return FullView(post), nil
}

func joinCommentUsers(comments []models.Comment) []models.CommentView {
	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		var user models.User
		db.DB.Select("id", "name", "profile_pic").Where("id = ?", comment.UserID).First(&user)

		views = append(views, models.CommentView{
			Comment: comment,
			User: models.PublicUser{
				ID:         comment.UserID,
				Name:       user.Name,
				ProfilePic: user.ProfilePic,
			},
		})
	}
	return views
}
