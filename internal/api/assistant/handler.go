package assistant

import (
	"net/http"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/assistant"

	"github.com/gin-gonic/gin"
)

// POST /assistant/messages
// Stores the user's turn. Completion is produced by the external AI
// provider and appended through the same table by the worker that
// consumes it.
func PostMessage(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := assistant.Message{
		CompanyID: co.ID,
		UserID:    c.GetUint("user_id"),
		Role:      assistant.RoleUser,
		Body:      req.Body,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
		return
	}

	c.JSON(http.StatusAccepted, msg)
}

// GET /assistant/messages
func ListMessages(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []assistant.Message
	if err := database.DB.Where("company_id = ?", co.ID).
		Order("created_at ASC").
		Limit(200).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, list)
}
