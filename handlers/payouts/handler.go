package payouts

import (
	"net/http"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Request a payout
// @Description Create a pending payout request for the authenticated creator. Processing is a status change, no money moves here.
// @Tags payouts
// @Accept json
// @Produce json
// @Param payout body models.PayoutCreate true "Payout request"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, payout"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/payouts [post]
func RequestPayout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input models.PayoutCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payout request"})
		return
	}

	payout := models.Payout{
		CreatorID:     userID.(string),
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        models.PayoutPending,
		RequestDate:   time.Now(),
	}
	if err := db.DB.Create(&payout).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Payout requested")
	c.JSON(http.StatusCreated, gin.H{"message": "Payout requested", "payout": payout})
}

// @Summary List payouts
// @Description The creator's payout requests, most recent first
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "payouts"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/payouts [get]
func GetPayouts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var payouts []models.Payout
	err := db.DB.Where("creator_id = ?", userID).Order("request_date DESC").Find(&payouts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// @Summary Payout history
// @Description Condensed payout rows for the history table, most recent first
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "payouts"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/payouts/history [get]
func GetPayoutHistory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var payouts []models.Payout
	err := db.DB.Where("creator_id = ?", userID).Order("request_date DESC").Find(&payouts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	type historyRow struct {
		ID     string              `json:"id"`
		Amount float64             `json:"amount"`
		Method string              `json:"method"`
		Status models.PayoutStatus `json:"status"`
		Date   time.Time           `json:"date"`
	}
	history := make([]historyRow, 0, len(payouts))
	for _, payout := range payouts {
		history = append(history, historyRow{
			ID:     payout.ID,
			Amount: payout.Amount,
			Method: payout.PaymentMethod,
			Status: payout.Status,
			Date:   payout.RequestDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{"payouts": history})
}
