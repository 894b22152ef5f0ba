package comments

import (
	"net/http"
	"strings"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Comment on a post
// @Description Append a comment to a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body models.CommentCreate true "Comment text"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, comment"
// @Failure 400 {object} map[string]string "message: Comment text is required"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/{id}/comments [post]
func AddComment(c *gin.Context) {
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

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required"})
		return
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}

	comment := models.Comment{
		PostID: postID,
		UserID: userID.(string),
		Text:   text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	var user models.User
	db.DB.Select("id", "name", "profile_pic").Where("id = ?", userID).First(&user)

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment added",
		"comment": models.CommentView{
			Comment: comment,
			User: models.PublicUser{
				ID:         comment.UserID,
				Name:       user.Name,
				ProfilePic: user.ProfilePic,
			},
		},
	})
}

// @Summary List comments on a post
// @Description Comments in creation order with the commenting user joined in
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "comments"
// @Failure 400 {object} map[string]string "message: Invalid post ID"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/{id}/comments [get]
func GetComments(c *gin.Context) {
	postID := c.Param("id")
	if !utils.IsValidID(postID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
		return
	}

	var comments []models.Comment
	err := db.DB.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

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

	c.JSON(http.StatusOK, gin.H{"comments": views})
}
