package users

import (
	"net/http"
	"strings"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/handlers/posts"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// @Summary Own profile
// @Description The authenticated user's profile, without credentials
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "profile"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: User not found"
// @Router /api/user/profile [get]
func GetProfile(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

// @Summary Own posts
// @Description The authenticated user's posts, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "posts"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/posts [get]
func GetOwnPosts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var ownPosts []models.Post
	err := db.DB.Preload("Media").Preload("Comments").
		Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&ownPosts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	views := make([]models.PostView, 0, len(ownPosts))
	for _, post := range ownPosts {
		views = append(views, posts.FullView(post))
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// @Summary Update profile
// @Description Update bio and social links (comma-separated)
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Profile fields"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, profile"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: User not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/update-profile [post]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	links := pq.StringArray{}
	if input.SocialLinks != "" {
		for _, link := range strings.Split(input.SocialLinks, ",") {
			links = append(links, strings.TrimSpace(link))
		}
	}

	err := db.DB.Model(&user).Updates(map[string]interface{}{
		"bio":          input.Bio,
		"social_links": links,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	user.Bio = input.Bio
	user.SocialLinks = links

	utils.LogSuccessWithUser(userID, "Profile updated")
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": user})
}

// @Summary Upload profile picture
// @Description Store the multipart field "profilePic" and set it as the user's picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param profilePic formData file true "Profile picture"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message, profilePic"
// @Failure 400 {object} map[string]string "message: No file uploaded"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/profile-pic [post]
func UploadProfilePic(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	file, err := c.FormFile("profilePic")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	url, err := utils.SaveUpload(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	err = db.DB.Model(&models.User{}).Where("id = ?", userID).Update("profile_pic", url).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully", "profilePic": url})
}

// @Summary Creator profile
// @Description Another user's public profile
// @Tags users
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "profile"
// @Failure 400 {object} map[string]string "message: Invalid creator ID format"
// @Failure 404 {object} map[string]string "message: User not found"
// @Router /api/user/{creatorId}/profile [get]
func GetCreatorProfile(c *gin.Context) {
	creatorID := c.Param("creatorId")
	if !utils.IsValidID(creatorID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid creator ID format"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", creatorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

// @Summary Creator posts
// @Description A creator's posts, newest first, each redacted for the viewer where necessary
// @Tags users
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "posts"
// @Failure 400 {object} map[string]string "message: Invalid creator ID format"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/{creatorId}/posts [get]
func GetCreatorPosts(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	creatorID := c.Param("creatorId")
	if !utils.IsValidID(creatorID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid creator ID format"})
		return
	}

	var creatorPosts []models.Post
	err := db.DB.Preload("Media").Preload("Comments").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&creatorPosts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	views := make([]models.PostView, 0, len(creatorPosts))
	for _, post := range creatorPosts {
		view, err := posts.ViewFor(post, userID.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// @Summary Subscription status for a creator
// @Description Whether the viewer holds an active subscription to the given creator
// @Tags users
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} map[string]bool "isSubscribed"
// @Failure 400 {object} map[string]string "message: Invalid creator ID format"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/{creatorId}/subscription-status [get]
func GetSubscriptionStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	creatorID := c.Param("creatorId")
	if !utils.IsValidID(creatorID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid creator ID format"})
		return
	}

	subscribed, err := posts.HasActiveSubscription(userID.(string), creatorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSubscribed": subscribed})
}

// @Summary Any-subscription status
// @Description Whether the viewer holds any active subscription at all
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool "isSubscribed"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user/subscription-status [get]
func GetAnySubscriptionStatus(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var count int64
	err := db.DB.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND status = ?", userID, models.SubscriptionActive).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSubscribed": count > 0})
}

// @Summary Search users
// @Description Case-insensitive email search, at most 10 results
// @Tags users
// @Produce json
// @Param email query string true "Email fragment"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "users"
// @Failure 400 {object} map[string]string "message: Email query parameter is required"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/user [get]
func SearchUsers(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email query parameter is required"})
		return
	}

	var found []models.User
	err := db.DB.Select("id", "name", "email", "profile_pic").
		Where("email ILIKE ?", "%"+email+"%").
		Limit(10).
		Find(&found).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	type searchResult struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		ProfilePic string `json:"profilePic"`
	}
	results := make([]searchResult, 0, len(found))
	for _, user := range found {
		results = append(results, searchResult{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			ProfilePic: user.ProfilePic,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": results})
}
