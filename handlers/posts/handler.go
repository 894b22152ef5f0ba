package posts

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Create a new post
// @Description Create a text, media, poll or fundraiser post. Media files go in the multipart field "media".
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param type formData string true "Post type (text, media, poll, fundraiser)"
// @Param text formData string false "Post text"
// @Param exclusive formData boolean false "Subscribers-only post"
// @Param options formData string false "Poll options as a JSON array"
// @Param fundingGoal formData number false "Fundraiser goal"
// @Param goalDeadline formData string false "Fundraiser deadline (RFC 3339)"
// @Param taggedUsers formData string false "Tagged user ids as a JSON array"
// @Param scheduleTime formData string false "Schedule time (RFC 3339, stored only)"
// @Param media formData file false "Media files"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, post"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts [post]
func CreatePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	postType := models.PostType(c.Request.FormValue("type"))
	switch postType {
	case models.PostTypeText, models.PostTypeMedia, models.PostTypePoll, models.PostTypeFundraiser:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post type"})
		return
	}

	text := strings.TrimSpace(c.Request.FormValue("text"))

	var mediaFiles []models.PostMedia
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["media"] {
			url, err := utils.SaveUpload(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
				return
			}
			mediaFiles = append(mediaFiles, models.PostMedia{
				Type:     utils.AttachmentTypeFor(file.Header.Get("Content-Type")),
				URL:      url,
				Filename: file.Filename,
			})
		}
	}

	var options []string
	if optionsStr := c.Request.FormValue("options"); optionsStr != "" {
		if err := json.Unmarshal([]byte(optionsStr), &options); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid options format"})
			return
		}
	}

	switch postType {
	case models.PostTypeText:
		if text == "" && len(mediaFiles) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Text content or media is required for text posts"})
			return
		}
	case models.PostTypeMedia:
		if len(mediaFiles) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Media files are required for media posts"})
			return
		}
	case models.PostTypePoll:
		if len(options) < 2 || hasBlankOption(options) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "At least two options with text are required for poll posts"})
			return
		}
	}

	post := models.Post{
		CreatorID:   userID.(string),
		Type:        postType,
		Text:        text,
		Exclusive:   c.Request.FormValue("exclusive") == "true",
		TaggedUsers: []string{},
		LikedBy:     []string{},
		VotedBy:     []string{},
	}

	if postType == models.PostTypePoll {
		trimmed := make([]string, len(options))
		for i, opt := range options {
			trimmed[i] = strings.TrimSpace(opt)
		}
		post.Options = trimmed
	} else {
		post.Options = []string{}
	}

	if postType == models.PostTypeFundraiser {
		goal, err := strconv.ParseFloat(c.Request.FormValue("fundingGoal"), 64)
		if err != nil || goal <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A valid funding goal is required for fundraiser posts"})
			return
		}
		post.FundingGoal = &goal

		if deadlineStr := c.Request.FormValue("goalDeadline"); deadlineStr != "" {
			if deadline, err := time.Parse(time.RFC3339, deadlineStr); err == nil {
				post.GoalDeadline = &deadline
			}
		}
	}

	if taggedStr := c.Request.FormValue("taggedUsers"); taggedStr != "" {
		var tagged []string
		if err := json.Unmarshal([]byte(taggedStr), &tagged); err == nil {
			for _, id := range tagged {
				if utils.IsValidID(id) {
					post.TaggedUsers = append(post.TaggedUsers, id)
				}
			}
		}
	}

	if scheduleStr := c.Request.FormValue("scheduleTime"); scheduleStr != "" {
		if scheduleTime, err := time.Parse(time.RFC3339, scheduleStr); err == nil {
			post.ScheduleTime = &scheduleTime
		}
	}

	var creator models.User
	if err := db.DB.First(&creator, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Creator not found"})
		return
	}
	post.CreatorName = creator.Name
	post.Media = mediaFiles

	if err := db.DB.Create(&post).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating post")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Post created")
	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": FullView(post)})
}

func hasBlankOption(options []string) bool {
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return true
		}
	}
	return false
}

// @Summary Subscribed creator feed
// @Description Posts by every creator the viewer holds an active subscription to, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "posts"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/creator [get]
func GetSubscribedFeed(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	creatorIDs, err := subscribedCreatorIDs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	views := []models.PostView{}
	if len(creatorIDs) > 0 {
		var posts []models.Post
		err := db.DB.Preload("Media").Preload("Comments").
			Where("creator_id IN ?", creatorIDs).
			Order("created_at DESC").
			Find(&posts).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
			return
		}

		for _, post := range posts {
			view := FullView(post)
			view.Creator = creatorInfo(post.CreatorID)
			views = append(views, view)
		}
	}

	c.JSON(http.StatusOK, gin.H{"posts": views})
}

// @Summary Get a post
// @Description Single post, redacted when exclusive and the viewer is not subscribed to its creator
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "post"
// @Failure 400 {object} map[string]string "message: Invalid post ID"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/{id} [get]
func GetPostByID(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	postID := c.Param("id")
	if !utils.IsValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := db.DB.Preload("Media").Preload("Comments").First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	view, err := ViewFor(post, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	view.Creator = creatorInfo(post.CreatorID)

	c.JSON(http.StatusOK, gin.H{"post": view})
}

// @Summary Delete a post
// @Description Delete one of the viewer's own posts
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 400 {object} map[string]string "message: Invalid post ID"
// @Failure 403 {object} map[string]string "message: You are not authorized to delete this post"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	postID := c.Param("id")
	if !utils.IsValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	if post.CreatorID != userID.(string) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this post"})
		return
	}

	// Uploaded media files stay on disk, only the rows go.
	if err := db.DB.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if err := db.DB.Where("post_id = ?", postID).Delete(&models.PostMedia{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if err := db.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Post deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// @Summary Exclusive content overview
// @Description Titles of exclusive posts from creators the viewer is actively subscribed to
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "content"
// @Failure 403 {object} map[string]string "message: No active subscription found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/exclusive-content [get]
func GetExclusiveContent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	creatorIDs, err := subscribedCreatorIDs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}
	if len(creatorIDs) == 0 {
		c.JSON(http.StatusForbidden, gin.H{"message": "No active subscription found"})
		return
	}

	var posts []models.Post
	err = db.DB.Where("exclusive = ? AND creator_id IN ?", true, creatorIDs).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	type contentItem struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	content := make([]contentItem, 0, len(posts))
	for _, post := range posts {
		title := post.Text
		if title == "" {
			title = "Exclusive Post"
		}
		description := post.Text
		if description == "" {
			description = "No description available"
		}
		content = append(content, contentItem{Title: title, Description: description})
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// subscribedCreatorIDs resolves the viewer's active subscriptions
// through their tiers to the owning creator ids.
func subscribedCreatorIDs(viewerID string) ([]string, error) {
	var creatorIDs []string
	result := db.DB.Model(&models.Subscription{}).
		Joins("JOIN tiers ON tiers.id = subscriptions.tier_id").
		Where("subscriptions.subscriber_id = ? AND subscriptions.status = ?", viewerID, models.SubscriptionActive).
		Distinct().
		Pluck("tiers.creator_id", &creatorIDs)
	return creatorIDs, result.Error
}

func creatorInfo(creatorID string) *models.PublicUser {
	var user models.User
	if err := db.DB.Select("id", "name", "profile_pic").Where("id = ?", creatorID).First(&user).Error; err != nil {
		return nil
	}
	return &models.PublicUser{ID: user.ID, Name: user.Name, ProfilePic: user.ProfilePic}
}
