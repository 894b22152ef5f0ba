package auth

import (
	"errors"
	"net/http"
	"time"

	"kreator-konnect-backend/db"
	"kreator-konnect-backend/models"
	"kreator-konnect-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// @Summary Sign up
// @Description Create a user account and return an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.SignupInput true "Signup information"
// @Success 201 {object} map[string]interface{} "message, user, token"
// @Failure 400 {object} map[string]string "message: validation error"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/auth/signup [post]
func Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if input.Name == "" || input.Email == "" || input.DateOfBirth == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	if !utils.ValidateEmail(input.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		if dob, err = time.Parse(time.RFC3339, input.DateOfBirth); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date of birth"})
			return
		}
	}
	if !dob.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date of birth must be in the past"})
		return
	}

	var existing models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		DateOfBirth: dob,
		Password:    hash,
		SocialLinks: []string{},
	}

	if err := db.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User signed up")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"user":    gin.H{"id": user.ID, "email": user.Email},
		"token":   token,
	})
}

// @Summary Log in
// @Description Authenticate with email and password, returns an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{} "message, user, token"
// @Failure 400 {object} map[string]string "message: Invalid credentials"
// @Failure 500 {object} map[string]string "message: Server error"
// @Router /api/auth/login [post]
func Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	if !checkPassword(user.Password, input.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user, 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    gin.H{"id": user.ID, "email": user.Email},
		"token":   token,
	})
}

// @Summary Current user
// @Description Return the id and email of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "userId, email"
// @Failure 401 {object} map[string]string "message: Unauthorized"
// @Failure 404 {object} map[string]string "message: User not found"
// @Router /api/auth/me [get]
func Me(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"userId": user.ID, "email": user.Email})
}
