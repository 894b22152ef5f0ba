package messages

import (
	"net/http"
	"sort"
	"strings"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
)

// EnhancedMessage is a message with both participants joined in.
type EnhancedMessage struct {
	models.Message
	Sender    models.PublicUser `json:"sender"`
	Recipient models.PublicUser `json:"recipient"`
}

// @Summary Send a message
// @Description Send a direct message. Content needs text or an attachment; attachment url and type are both-or-neither.
// @Tags messages
// @Accept json
// @Produce json
// @Param message body models.MessageCreate true "Message"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, sent"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: Recipient not found"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/messages [post]
func SendMessage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	var input models.MessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipient ID format"})
		return
	}
	if !utils.IsValidID(input.RecipientID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipient ID format"})
		return
	}

	if input.Content.Text == "" && input.Content.AttachmentURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message content (text or attachment) is required"})
		return
	}
	if input.Content.AttachmentURL != "" && input.Content.AttachmentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Attachment type is required when providing attachment URL"})
		return
	}
	if input.Content.AttachmentType != "" && input.Content.AttachmentURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Attachment URL is required when providing attachment type"})
		return
	}

	var recipient models.User
	if err := db.DB.First(&recipient, "id = ?", input.RecipientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipient not found"})
		return
	}

	message := models.Message{
		SenderID:       userID.(string),
		RecipientID:    input.RecipientID,
		Text:           input.Content.Text,
		AttachmentURL:  input.Content.AttachmentURL,
		AttachmentType: models.AttachmentType(input.Content.AttachmentType),
	}
	if err := db.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent", "sent": enhance(message)})
}

// @Summary Upload a message attachment
// @Description Store a single attachment file; the returned url and type go into a follow-up send
// @Tags messages
// @Accept multipart/form-data
// @Produce json
// @Param attachment formData file true "Attachment file"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "message, attachment"
// @Failure 400 {object} map[string]string "message: No file uploaded"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/messages/upload [post]
func UploadAttachment(c *gin.Context) {
	_, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}

	file, err := c.FormFile("attachment")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	url, err := utils.SaveUpload(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"attachment": gin.H{
			"url":      url,
			"type":     utils.AttachmentTypeFor(file.Header.Get("Content-Type")),
			"filename": file.Filename,
		},
	})
}

// @Summary List conversations
// @Description One entry per counterpart the viewer has exchanged messages with, annotated with the latest message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "conversations"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/messages/conversations [get]
func GetConversations(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}
	viewerID := userID.(string)

	var msgs []models.Message
	err := db.DB.Where("sender_id = ? OR recipient_id = ?", viewerID, viewerID).
		Order("created_at DESC").
		Find(&msgs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	conversations := aggregateConversations(viewerID, msgs, lookupPublicUser)

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// aggregateConversations derives the conversation list from the
// viewer's messages, which must be ordered newest-first. The first
// message seen per canonical pair key is that pair's latest.
func aggregateConversations(viewerID string, msgs []models.Message, lookup func(string) models.PublicUser) []models.Conversation {
	conversations := []models.Conversation{}
	seen := make(map[string]bool)

	for _, msg := range msgs {
		otherID := msg.SenderID
		if msg.SenderID == viewerID {
			otherID = msg.RecipientID
		}

		key := ConversationKey(viewerID, otherID)
		if seen[key] {
			continue
		}
		seen[key] = true

		other := lookup(otherID)
		conversations = append(conversations, models.Conversation{
			ID:            key,
			OtherUserID:   otherID,
			OtherUserName: other.Name,
			OtherUserPic:  other.ProfilePic,
			LastMessage:   preview(msg),
			Timestamp:     msg.CreatedAt,
		})
	}

	// Insertion order already matches, re-sort in case the input was not
	// strictly ordered.
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].Timestamp.After(conversations[j].Timestamp)
	})

	return conversations
}

// ConversationKey is the order-independent id of a 1:1 thread: both
// participant ids sorted and joined.
func ConversationKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

func preview(msg models.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	if msg.AttachmentType != "" {
		return "[" + string(msg.AttachmentType) + "]"
	}
	return "[Attachment]"
}

// @Summary Conversation history
// @Description All messages between the two participants of the conversation id, oldest first. The viewer must be one of them.
// @Tags messages
// @Produce json
// @Param conversationId path string true "Conversation ID (<id1>-<id2>)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "messages"
// @Failure 400 {object} map[string]string "message: Invalid conversation ID format"
// @Failure 403 {object} map[string]string "message: You are not authorized to view this conversation"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/messages/{conversationId} [get]
func GetConversationMessages(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in token"})
		return
	}
	viewerID := userID.(string)

	parts := strings.Split(c.Param("conversationId"), "-")
	id1, id2, ok := splitConversationID(parts)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid conversation ID format"})
		return
	}

	if viewerID != id1 && viewerID != id2 {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to view this conversation"})
		return
	}

	var msgs []models.Message
	err := db.DB.Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		id1, id2, id2, id1).
		Order("created_at ASC").
		Find(&msgs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	enhanced := make([]EnhancedMessage, 0, len(msgs))
	for _, msg := range msgs {
		enhanced = append(enhanced, enhance(msg))
	}

	c.JSON(http.StatusOK, gin.H{"messages": enhanced})
}

// splitConversationID rebuilds the two uuids from the dash-joined
// conversation id. A uuid itself contains dashes, so the split parts
// are regrouped 5-and-5.
func splitConversationID(parts []string) (string, string, bool) {
	if len(parts) != 10 {
		return "", "", false
	}
	id1 := strings.Join(parts[:5], "-")
	id2 := strings.Join(parts[5:], "-")
	if !utils.IsValidID(id1) || !utils.IsValidID(id2) {
		return "", "", false
	}
	return id1, id2, true
}

func enhance(msg models.Message) EnhancedMessage {
	return EnhancedMessage{
		Message:   msg,
		Sender:    lookupPublicUser(msg.SenderID),
		Recipient: lookupPublicUser(msg.RecipientID),
	}
}

func lookupPublicUser(id string) models.PublicUser {
	var user models.User
	db.DB.Select("id", "name", "profile_pic").Where("id = ?", id).First(&user)
	return models.PublicUser{ID: id, Name: user.Name, ProfilePic: user.ProfilePic}
}
