package social

import (
	"net/http"
	"time"

	"property-app/database"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/properties"
	"property-app/internal/domain/social"

	"github.com/gin-gonic/gin"
)

// POST /social/posts
// Route is gated by the social_scheduler feature and the social_posts
// capacity check.
func SchedulePost(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		PropertyID  *string   `json:"property_id"`
		Network     string    `json:"network" binding:"required"`
		Body        string    `json:"body" binding:"required"`
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Network {
	case social.NetworkFacebook, social.NetworkInstagram, social.NetworkLinkedIn:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported network"})
		return
	}

	if req.ScheduledAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduled_at must be in the future"})
		return
	}

	if req.PropertyID != nil {
		var prop properties.Property
		if err := database.DB.Where("id = ? AND company_id = ?", *req.PropertyID, co.ID).First(&prop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
	}

	post := social.Post{
		CompanyID:   co.ID,
		PropertyID:  req.PropertyID,
		Network:     req.Network,
		Body:        req.Body,
		ScheduledAt: req.ScheduledAt,
		Status:      social.StatusScheduled,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GET /social/posts
func ListPosts(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var list []social.Post
	q := database.DB.Where("company_id = ?", co.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("scheduled_at ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /social/posts/:id/cancel
func CancelPost(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var post social.Post
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.Status != social.StatusScheduled {
		c.JSON(http.StatusConflict, gin.H{"error": "Only scheduled posts can be cancelled"})
		return
	}

	if err := database.DB.Model(&post).Update("status", social.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post cancelled"})
}
