package metrics

import (
	"net/http"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Monthly earnings
// @Description Tier prices of the creator's active subscriptions started this calendar month, minus completed payouts requested this month. Only subscriptions that started this month count.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]float64 "earnings"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/earnings/monthly [get]
func GetMonthlyEarnings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var earnings float64
	err := db.DB.Model(&models.Subscription{}).
		Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Where("subscriptions.status = ? AND subscriptions.start_date >= ? AND tiers.creator_id = ?",
			models.SubscriptionActive, startOfMonth, userID).
		Select("COALESCE(SUM(tiers.price), 0)").
		Scan(&earnings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	var paidOut float64
	err = db.DB.Model(&models.Payout{}).
		Where("creator_id = ? AND status = ? AND request_date >= ?",
			userID, models.PayoutCompleted, startOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paidOut).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"earnings": earnings - paidOut})
}

// @Summary Subscriber count
// @Description Number of active subscriptions across the creator's tiers
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "count"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/subscribers/count [get]
func GetSubscriberCount(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var count int64
	err := db.DB.Model(&models.Subscription{}).
		Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Where("subscriptions.status = ? AND tiers.creator_id = ?", models.SubscriptionActive, userID).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// @Summary Post engagement metrics
// @Description Total likes and comments across the creator's posts. Views are not tracked and always report 0.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64 "views, likes, comments"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/metrics [get]
func GetPostMetrics(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var likes int64
	err := db.DB.Model(&models.Post{}).
		Where("creator_id = ?", userID).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&likes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	var comments int64
	err = db.DB.Model(&models.Comment{}).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.creator_id = ?", userID).
		Count(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"views": 0, "likes": likes, "comments": comments})
}
