package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/directory"
	"github.com/hades874/10MS-Req-Dash/internal/models"
)

// ListTeamMembers godoc
// @Summary List active team members
// @Tags team-members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TeamMember
// @Failure 401 {object} object{error=string}
// @Router /api/team-members [get]
func (h *Handler) ListTeamMembers(c *gin.Context) {
	members, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	if members == nil {
		members = []models.TeamMember{}
	}
	c.JSON(http.StatusOK, members)
}

// CreateTeamMember godoc
// @Summary Create a team member
// @Tags team-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body object{name=string,email=string,password=string,team=string} true "New member details"
// @Success 200 {object} models.TeamMember
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/team-members [post]
func (h *Handler) CreateTeamMember(c *gin.Context) {
	var request struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Team     string `json:"team" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	member, err := h.store.Create(directory.CreateMemberInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Team:     request.Team,
	})
	if err != nil {
		if errors.Is(err, directory.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateTeamMember godoc
// @Summary Update a team member
// @Description Shallow merge; the password is only replaced when provided
// @Tags team-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member id"
// @Param member body object{name=string,email=string,password=string,team=string} false "Fields to update"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/team-members/{id} [put]
func (h *Handler) UpdateTeamMember(c *gin.Context) {
	id := c.Param("id")

	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Team     string `json:"team"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err := h.store.Update(id, directory.UpdateMemberInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Team:     request.Team,
	})
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member updated successfully"})
}

// DeleteTeamMember godoc
// @Summary Delete a team member
// @Tags team-members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/team-members/{id} [delete]
func (h *Handler) DeleteTeamMember(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
