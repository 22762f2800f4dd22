package auth

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateInviteToken stores a team-invite token for an invited user and
// returns it, or "" on failure.
func CreateInviteToken(userID uint) string {
	database.DB.Where("user_id = ? AND type = ?", userID, "team_invite").Delete(&users.VerificationToken{})

	token := generateVerificationToken()
	invite := users.VerificationToken{
		UserID:    userID,
		Token:     token,
		Type:      "team_invite",
		ExpiresAt: time.Now().AddDate(0, 0, 7),
	}
	if err := database.DB.Create(&invite).Error; err != nil {
		return ""
	}
	return token
}

// POST /accept-invite
// The invited user sets their password and becomes verified.
func AcceptInvite(c *gin.Context) {
	var body struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !isPasswordStrong(body.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters with letters and numbers"})
		return
	}

	var invite users.VerificationToken
	err := database.DB.Where("token = ? AND type = ?", body.Token, "team_invite").First(&invite).Error
	if err != nil || invite.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired invitation"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", invite.UserID).
		Updates(map[string]interface{}{
			"password":    string(hashed),
			"is_verified": true,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate account"})
		return
	}

	database.DB.Delete(&invite)

	c.JSON(http.StatusOK, gin.H{"message": "Invitation accepted. You can now log in."})
}
