package polls

import (
	"net/http"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// VoteInput model for voting on a poll post
type VoteInput struct {
	PostID      string `json:"postId" binding:"required"`
	OptionIndex int    `json:"optionIndex"`
}

// @Summary Vote on a poll
// @Description Record that the viewer voted on a poll post. One vote per user; the chosen option index is acknowledged but no per-option tally is kept.
// @Tags polls
// @Accept json
// @Produce json
// @Param vote body VoteInput true "Vote"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, optionIndex"
// @Failure 400 {object} map[string]string "message: Not a poll post / User has already voted"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/polls/vote [post]
func Vote(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "postId is required"})
		return
	}
	if !utils.IsValidID(input.PostID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
		return
	}
	if post.Type != models.PostTypePoll {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not a poll post"})
		return
	}

	voterID := userID.(string)
	for _, id := range post.VotedBy {
		if id == voterID {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User has already voted"})
			return
		}
	}

	post.VotedBy = append(post.VotedBy, voterID)
	if err := db.DB.Model(&post).Update("voted_by", post.VotedBy).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded", "optionIndex": input.OptionIndex})
}
