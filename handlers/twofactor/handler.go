package twofactor

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// VerifyInput model for checking a 2FA code
type VerifyInput struct {
	Code string `json:"code" binding:"required"`
}

func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken anyway
		panic(err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

// @Summary 2FA status
// @Description Whether two-factor auth is enabled for the viewer
// @Tags 2fa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool "isTwoFactorEnabled"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/2fa/status [get]
func GetStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.Select("two_factor_enabled").Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isTwoFactorEnabled": user.TwoFactorEnabled})
}

// @Summary Send 2FA code
// @Description Generate a 6-digit verification code, store it as the pending secret and email it to the viewer
// @Tags 2fa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Verification code sent"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/2fa/send-code [post]
func SendCode(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	code := generateCode()
	if err := db.DB.Model(&user).Update("two_factor_secret", code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	if err := utils.SendTwoFactorCode(user.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// @Summary Verify 2FA code
// @Description Compare the submitted code with the pending secret; on match enable 2FA and clear the secret
// @Tags 2fa
// @Accept json
// @Produce json
// @Param code body VerifyInput true "Verification code"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: 2FA enabled successfully"
// @Failure 400 {object} map[string]string "message: Invalid verification code"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/2fa/verify [post]
func Verify(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification code"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if user.TwoFactorSecret == "" || user.TwoFactorSecret != input.Code {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification code"})
		return
	}

	err := db.DB.Model(&user).Updates(map[string]interface{}{
		"two_factor_enabled": true,
		"two_factor_secret":  "",
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "2FA enabled")
	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled successfully"})
}

// @Summary Disable 2FA
// @Description Turn off two-factor auth and clear any pending secret
// @Tags 2fa
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: 2FA disabled successfully"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/2fa/disable [post]
func Disable(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	err := db.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"two_factor_enabled": false,
			"two_factor_secret":  "",
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "2FA disabled")
	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled successfully"})
}
