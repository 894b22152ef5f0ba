package subscriptions

import (
	"net/http"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// SubscriptionView is a subscription with its tier and the tier's
// creator joined in.
type SubscriptionView struct {
	models.Subscription
	Tier    models.Tier        `json:"tier"`
	Creator *models.PublicUser `json:"creator,omitempty"`
}

// @Summary Subscribe to a tier
// @Description Create an active subscription to a tier. A subscriber holds at most one active subscription per creator, checked before the insert.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.SubscriptionCreate true "Tier to subscribe to"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, subscription"
// @Failure 400 {object} map[string]string "message: Already subscribed to this creator"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: Tier not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/subscription [post]
func Subscribe(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input models.SubscriptionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "tierId is required"})
		return
	}
	if !utils.IsValidID(input.TierID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid tier ID format"})
		return
	}

	var tier models.Tier
	if err := db.DB.First(&tier, "id = ?", input.TierID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Tier not found"})
		return
	}

	// Pre-check only; concurrent subscribes can still slip through.
	var existing models.Subscription
	err := db.DB.Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Where("subscriptions.subscriber_id = ? AND subscriptions.status = ? AND tiers.creator_id = ?",
			userID, models.SubscriptionActive, tier.CreatorID).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Already subscribed to this creator"})
		return
	}

	subscription := models.Subscription{
		SubscriberID: userID.(string),
		TierID:       tier.ID,
		Status:       models.SubscriptionActive,
		StartDate:    time.Now(),
	}
	if err := db.DB.Create(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscribed to tier")
	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed to tier", "subscription": subscription})
}

// @Summary List own subscriptions
// @Description The viewer's subscriptions with tier and creator joined in
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "subscriptions"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/subscription [get]
func GetSubscriptions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var subscriptions []models.Subscription
	if err := db.DB.Where("subscriber_id = ?", userID).Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	views := make([]SubscriptionView, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		view := SubscriptionView{Subscription: subscription}

		var tier models.Tier
		if err := db.DB.First(&tier, "id = ?", subscription.TierID).Error; err == nil {
			view.Tier = tier

			var creator models.User
			if err := db.DB.Select("id", "name", "profile_pic").Where("id = ?", tier.CreatorID).First(&creator).Error; err == nil {
				view.Creator = &models.PublicUser{ID: creator.ID, Name: creator.Name, ProfilePic: creator.ProfilePic}
			}
		}

		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": views})
}

// @Summary Cancel subscription
// @Description Cancel the viewer's active subscription, setting its end date
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Subscription canceled"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: No active subscription found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/subscription/cancel [post]
func Cancel(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var subscription models.Subscription
	err := db.DB.Where("subscriber_id = ? AND status = ?", userID, models.SubscriptionActive).
		Order("start_date DESC").
		First(&subscription).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No active subscription found"})
		return
	}

	now := time.Now()
	err = db.DB.Model(&subscription).Updates(map[string]interface{}{
		"status":   models.SubscriptionCanceled,
		"end_date": now,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription canceled")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}
