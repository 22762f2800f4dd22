package team

import (
	"net/http"

	"property-app/database"
	authapi "property-app/internal/api/auth"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type MemberDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

// GET /team
func ListMembers(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var members []users.User
	if err := database.DB.Where("company_id = ?", co.ID).Order("created_at ASC").Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team"})
		return
	}

	out := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, MemberDTO{
			ID:         m.ID,
			Name:       m.Name,
			Lastname:   m.Lastname,
			Email:      m.Email,
			Role:       m.Role,
			IsVerified: m.IsVerified,
		})
	}
	c.JSON(http.StatusOK, out)
}

// POST /team/invite
// Route is gated by the team_members capacity check.
func InviteMember(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Lastname string `json:"lastname"`
		Email    string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	companyID := co.ID
	member := users.User{
		Name:         req.Name,
		Lastname:     req.Lastname,
		Email:        req.Email,
		AuthProvider: "local",
		Role:         users.RoleUser,
		IsVerified:   false,
		CompanyID:    &companyID,
	}
	if err := database.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email may already exist", "details": err.Error()})
		return
	}

	token := authapi.CreateInviteToken(member.ID)
	if token == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invite token"})
		return
	}

	if err := authapi.SendTeamInviteEmail(member.Email, co.Name, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invite email"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Invitation sent", "member_id": member.ID})
}

// DELETE /team/:id
func RemoveMember(c *gin.Context) {
	co, ok := middleware.CompanyFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No company found for this account"})
		return
	}

	userID := c.GetUint("user_id")

	var member users.User
	if err := database.DB.Where("id = ? AND company_id = ?", c.Param("id"), co.ID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	if member.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot remove yourself"})
		return
	}
	if member.ID == co.OwnerUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The company owner cannot be removed"})
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove team member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}
