package likes

import (
	"net/http"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// @Summary Toggle like on a post
// @Description Add the viewer to likedBy or remove them, keeping the likes counter in step
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "likes, likedBy"
// @Failure 400 {object} map[string]string "message: Invalid post ID"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: Post not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/posts/{id}/like [post]
func ToggleLike(c *gin.Context) {
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

	viewerID := userID.(string)
	hasLiked := false
	for _, id := range post.LikedBy {
		if id == viewerID {
			hasLiked = true
			break
		}
	}

	if hasLiked {
		filtered := make(pq.StringArray, 0, len(post.LikedBy))
		for _, id := range post.LikedBy {
			if id != viewerID {
				filtered = append(filtered, id)
			}
		}
		post.LikedBy = filtered
	} else {
		post.LikedBy = append(post.LikedBy, viewerID)
	}
	// likes mirrors the set so the count can never drift
	post.Likes = len(post.LikedBy)

	err := db.DB.Model(&post).Updates(map[string]interface{}{
		"likes":    post.Likes,
		"liked_by": post.LikedBy,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": post.Likes, "likedBy": post.LikedBy})
}
