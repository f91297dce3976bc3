package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

type registerInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Phone     string `json:"phone"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func RegisterCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		createUser(c, db, input, rbac.RoleCustomer)
	}
}

// POST /auth/admin/:family/register
//
// Each privileged role family has its own registration surface; the path
// segment names the role being requested. Team members created by an existing
// actor go through the team controller instead, which enforces the
// assignable-role sub-policy.
func RegisterTeamAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := rbac.ParseRole(c.Param("family"))
		if err != nil || !role.Privileged() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role family"})
			return
		}

		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		createUser(c, db, input, role)
	}
}

func createUser(c *gin.Context, db *gorm.DB, input registerInput, role rbac.Role) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         string(role),
		Cart:         models.Cart{},
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    user,
		"token":   token,
	})
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, db)
		if !ok {
			return
		}
		respondWithToken(c, user, "")
	}
}

// POST /auth/admin/:family/login
//
// The family segment identifies which role-scoped login surface is in use.
// The account must hold a privileged role; the landing route is derived from
// that role, not from the family segment.
func AdminLogin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, db)
		if !ok {
			return
		}

		role, err := rbac.ParseRole(user.Role)
		if err != nil || !role.Privileged() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account has no admin access"})
			return
		}
		respondWithToken(c, user, "/admin/"+rbac.DefaultRouteFor(role))
	}
}

func authenticate(c *gin.Context, db *gorm.DB) (models.User, bool) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return models.User{}, false
	}

	var user models.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(input.Email))).First(&user).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return models.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return models.User{}, false
	}
	return user, true
}

func respondWithToken(c *gin.Context, user models.User, landing string) {
	token, err := GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	resp := gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	}
	if landing != "" {
		resp["landing"] = landing
	}
	c.JSON(http.StatusOK, resp)
}
