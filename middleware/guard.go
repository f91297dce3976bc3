package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoparts-hub/storefront-api/models"
	"github.com/autoparts-hub/storefront-api/rbac"
)

// RoleResolver resolves a principal id to its role. The role is never carried
// in the session token, so every guarded request pays this lookup.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) (rbac.Role, error)
}

type dbRoleResolver struct {
	db *gorm.DB
}

func NewRoleResolver(db *gorm.DB) RoleResolver {
	return &dbRoleResolver{db: db}
}

func (r *dbRoleResolver) ResolveRole(ctx context.Context, userID string) (rbac.Role, error) {
	var roleStr string
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role").
		Where("id = ?", userID).
		Take(&roleStr).Error
	if err != nil {
		return rbac.RoleNone, err
	}
	return rbac.ParseRole(roleStr)
}

// RequireRoute guards one admin section. Resolution failures, missing
// sessions, unknown roles and missing capabilities all deny; the response
// carries the role-family login path and the originally requested location so
// the client can resume after sign-in.
func RequireRoute(resolver RoleResolver, routeKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := resolveOrDeny(c, resolver)
		if !ok {
			return
		}
		if !rbac.CanAccessRoute(role, routeKey) {
			deny(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Set("user_role", string(role))
		c.Next()
	}
}

// RequireAdmin guards routes shared by all privileged roles (e.g. the admin
// landing endpoint).
func RequireAdmin(resolver RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := resolveOrDeny(c, resolver)
		if !ok {
			return
		}
		if !role.Privileged() {
			deny(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Set("user_role", string(role))
		c.Next()
	}
}

func resolveOrDeny(c *gin.Context, resolver RoleResolver) (rbac.Role, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		deny(c, http.StatusUnauthorized, "Authentication required")
		return rbac.RoleNone, false
	}

	role, err := resolver.ResolveRole(c.Request.Context(), userID)
	if err != nil {
		// Lookup failure is indistinguishable from "no role": fail closed.
		deny(c, http.StatusUnauthorized, "Authentication required")
		return rbac.RoleNone, false
	}
	return role, true
}

func deny(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"error":     msg,
		"login_url": LoginPathFor(c.Request.URL.Path),
		"from":      c.Request.URL.RequestURI(),
	})
	c.Abort()
}

// LoginPathFor derives the role-scoped login surface from the requested
// path's segment after /admin/, defaulting to the generic admin surface.
func LoginPathFor(path string) string {
	family := "admin"
	trimmed := strings.TrimPrefix(path, "/admin/")
	if trimmed != path {
		if seg := strings.SplitN(trimmed, "/", 2)[0]; seg != "" {
			family = seg
		}
	}
	return "/admin/" + family + "/login"
}

// CurrentRole reads the role the guard resolved for this request.
func CurrentRole(c *gin.Context) rbac.Role {
	role, _ := rbac.ParseRole(c.GetString("user_role"))
	return role
}
