package tiers

import (
	"net/http"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Create a tier
// @Description Create a membership tier owned by the authenticated creator
// @Tags tiers
// @Accept json
// @Produce json
// @Param tier body models.TierCreate true "Tier information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, tier"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/tiers [post]
func CreateTier(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input models.TierCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid name, price (non-negative), and benefits (as an array) are required."})
		return
	}

	if input.Name == "" || input.Price == nil || *input.Price < 0 || input.Benefits == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid name, price (non-negative), and benefits (as an array) are required."})
		return
	}

	tier := models.Tier{
		CreatorID: userID.(string),
		Name:      input.Name,
		Price:     *input.Price,
		Benefits:  input.Benefits,
	}

	if err := db.DB.Create(&tier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Tier created")
	c.JSON(http.StatusCreated, gin.H{"message": "Tier created successfully", "tier": tier})
}

// @Summary List own tiers
// @Description The authenticated creator's tiers ordered by price
// @Tags tiers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "tiers"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/tiers/me [get]
func GetMyTiers(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var tiers []models.Tier
	if err := db.DB.Where("creator_id = ?", userID).Order("price ASC").Find(&tiers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiers": tiers})
}

// @Summary List a creator's tiers
// @Description Tiers offered by the given creator
// @Tags tiers
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "tiers"
// @Failure 400 {object} map[string]string "message: Invalid creator ID format"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/tiers/{creatorId} [get]
func GetCreatorTiers(c *gin.Context) {
	creatorID := c.Param("creatorId")
	if !utils.IsValidID(creatorID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid creator ID format"})
		return
	}

	var tiers []models.Tier
	if err := db.DB.Where("creator_id = ?", creatorID).Find(&tiers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiers": tiers})
}
