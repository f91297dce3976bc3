package teamControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/middleware"
	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

type CreateMemberInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
}

type UpdateMemberInput struct {
	FirstName string  `json:"first_name" binding:"required,min=2"`
	LastName  string  `json:"last_name" binding:"required,min=2"`
	Phone     string  `json:"phone"`
	Role      *string `json:"role"`
}

func privilegedRoleStrings() []string {
	roles := rbac.PrivilegedRoles()
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

// GET /admin/team
func ListMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var members []models.User
		err := db.WithContext(c.Request.Context()).
			Select("id", "email", "first_name", "last_name", "phone", "role", "created_at").
			Where("role IN ?", privilegedRoleStrings()).
			Order("created_at ASC").
			Find(&members).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

// POST /admin/team
//
// The role grant is checked before anything is written: an actor may only
// create accounts with roles strictly below their own.
func CreateMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(actorRole, rbac.RouteTeam, rbac.ActionCreate) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to create team members"})
			return
		}

		var input CreateMemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newRole, err := rbac.ParseRole(input.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		if !rbac.CanAssignRole(actorRole, newRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot grant this role"})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		member := models.User{
			ID:           uuid.NewString(),
			Email:        input.Email,
			PasswordHash: string(hash),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
			Role:         string(newRole),
		}
		if err := db.Create(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
			return
		}
		c.JSON(http.StatusCreated, member)
	}
}

// PUT /admin/team/:id
func UpdateMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(actorRole, rbac.RouteTeam, rbac.ActionEdit) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to edit team members"})
			return
		}

		var member models.User
		err := db.Where("id = ? AND role IN ?", c.Param("id"), privilegedRoleStrings()).
			First(&member).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}

		var input UpdateMemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// A role change is a grant: it needs the same authority as creating
		// an account with that role, and the actor must also outrank the
		// member's current role.
		if input.Role != nil && *input.Role != member.Role {
			newRole, err := rbac.ParseRole(*input.Role)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
				return
			}
			currentRole, err := rbac.ParseRole(member.Role)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Member has no valid role"})
				return
			}
			if !rbac.CanAssignRole(actorRole, newRole) || !rbac.CanAssignRole(actorRole, currentRole) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Cannot grant this role"})
				return
			}
			member.Role = string(newRole)
		}

		member.FirstName = input.FirstName
		member.LastName = input.LastName
		member.Phone = input.Phone
		if err := db.Save(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// DELETE /admin/team/:id
func DeleteMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := middleware.CurrentRole(c)
		if !rbac.CanPerformAction(actorRole, rbac.RouteTeam, rbac.ActionDelete) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to remove team members"})
			return
		}

		if c.Param("id") == c.GetString("user_id") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot remove your own account"})
			return
		}

		var member models.User
		err := db.Where("id = ? AND role IN ?", c.Param("id"), privilegedRoleStrings()).
			First(&member).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
			return
		}

		memberRole, err := rbac.ParseRole(member.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Member has no valid role"})
			return
		}
		if !rbac.CanAssignRole(actorRole, memberRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot remove a member of this role"})
			return
		}

		if err := db.Delete(&member).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove team member"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
	}
}

// GET /admin/team/assignable-roles
//
// Roles the actor may grant, for the create/edit member forms.
func ListAssignableRoles(c *gin.Context) {
	actorRole := middleware.CurrentRole(c)
	roles := rbac.AssignableRoles(actorRole)
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	c.JSON(http.StatusOK, gin.H{"roles": out})
}
