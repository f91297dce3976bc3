package leadControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/middleware"
	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

type LeadInput struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Notes     string `json:"notes"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=new contacted qualified lost converted"`
}

type AssignInput struct {
	AssignedTo string `json:"assigned_to" binding:"required"`
}

// GET /admin/leads
//
// sales_member sees only leads assigned to them; everyone else sees all.
func ListLeads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)

		query := db.WithContext(c.Request.Context()).Preload("Assignee")
		if role == rbac.RoleSalesMember {
			query = query.Where("assigned_to = ?", c.GetString("user_id"))
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR company ILIKE ?",
				like, like, like, like,
			)
		}

		var leads []models.Lead
		if err := query.Order("created_at DESC").Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

// POST /admin/leads
func CreateLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteLeads, rbac.ActionCreate) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to create leads"})
			return
		}

		var input LeadInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lead := models.Lead{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
			Company:   input.Company,
			Notes:     input.Notes,
			Status:    models.LeadStatusNew,
		}
		if err := db.Create(&lead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
			return
		}
		c.JSON(http.StatusCreated, lead)
	}
}

// PUT /admin/leads/:id
func UpdateLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteLeads, rbac.ActionEdit) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to edit leads"})
			return
		}

		var lead models.Lead
		if err := db.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}

		var input LeadInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		lead.FirstName = input.FirstName
		lead.LastName = input.LastName
		lead.Email = input.Email
		lead.Phone = input.Phone
		lead.Company = input.Company
		lead.Notes = input.Notes
		if err := db.Save(&lead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
			return
		}
		c.JSON(http.StatusOK, lead)
	}
}

// PUT /admin/leads/:id/status
//
// A sales_member may only move leads assigned to them; manager and above may
// move any lead.
func UpdateLeadStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteLeads, rbac.ActionUpdateStatus) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to update lead status"})
			return
		}

		var lead models.Lead
		if err := db.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}

		if role == rbac.RoleSalesMember {
			userID := c.GetString("user_id")
			if lead.AssignedTo == nil || *lead.AssignedTo != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Lead is not assigned to you"})
				return
			}
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Model(&lead).Update("status", models.LeadStatus(input.Status)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead status"})
			return
		}
		lead.Status = models.LeadStatus(input.Status)
		c.JSON(http.StatusOK, lead)
	}
}

// PUT /admin/leads/:id/assign
func AssignLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteLeads, rbac.ActionAssign) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to assign leads"})
			return
		}

		var lead models.Lead
		if err := db.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}

		var input AssignInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var assignee models.User
		if err := db.First(&assignee, "id = ?", input.AssignedTo).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee not found"})
			return
		}

		assigneeRole, err := rbac.ParseRole(assignee.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee has no valid role"})
			return
		}
		allowed := false
		for _, r := range rbac.AssigneeRoles(role) {
			if r == assigneeRole {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot assign leads to this role"})
			return
		}

		if err := db.Model(&lead).Update("assigned_to", assignee.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign lead"})
			return
		}
		lead.AssignedTo = &assignee.ID
		c.JSON(http.StatusOK, lead)
	}
}

// DELETE /admin/leads/:id
func DeleteLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(role, rbac.RouteLeads, rbac.ActionDelete) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete leads"})
			return
		}

		result := db.Delete(&models.Lead{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
	}
}

// GET /admin/leads/assignees
//
// Team members the actor may pick as a lead assignee.
func ListAssignees(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.CurrentRole(c)
		roles := rbac.AssigneeRoles(role)
		if len(roles) == 0 {
			c.JSON(http.StatusOK, []models.User{})
			return
		}

		roleStrs := make([]string, 0, len(roles))
		for _, r := range roles {
			roleStrs = append(roleStrs, string(r))
		}

		var members []models.User
		err := db.WithContext(c.Request.Context()).
			Select("id", "email", "first_name", "last_name", "role").
			Where("role IN ?", roleStrs).
			Order("first_name ASC").
			Find(&members).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}
