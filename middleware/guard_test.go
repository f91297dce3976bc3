package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/autoparts-hub/storefront-api/rbac"
)

type stubResolver struct {
	role rbac.Role
	err  error
}

func (s stubResolver) ResolveRole(ctx context.Context, userID string) (rbac.Role, error) {
	return s.role, s.err
}

func newAuthedRouter(userID string, resolver RoleResolver, routeKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/"+routeKey,
		func(c *gin.Context) {
			if userID != "" {
				c.Set("user_id", userID)
			}
			c.Next()
		},
		RequireRoute(resolver, routeKey),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
		})
	return r
}

type denyBody struct {
	Error    string `json:"error"`
	LoginURL string `json:"login_url"`
	From     string `json:"from"`
}

func TestGuardUnauthenticatedRedirects(t *testing.T) {
	r := newAuthedRouter("", stubResolver{role: rbac.RoleAdmin}, rbac.RouteProducts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var body denyBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.LoginURL != "/admin/products/login" {
		t.Errorf("login_url = %q, want /admin/products/login", body.LoginURL)
	}
	if body.From != "/admin/products" {
		t.Errorf("from = %q, want /admin/products (original location preserved)", body.From)
	}
}

func TestGuardResolutionFailureFailsClosed(t *testing.T) {
	r := newAuthedRouter("user-1", stubResolver{err: errors.New("profile lookup failed")}, rbac.RouteLeads)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 (fail closed, not a hang)", w.Code)
	}
	var body denyBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.LoginURL != "/admin/leads/login" {
		t.Errorf("login_url = %q, want /admin/leads/login", body.LoginURL)
	}
}

func TestGuardRoleWithoutCapabilityDenied(t *testing.T) {
	r := newAuthedRouter("user-1", stubResolver{role: rbac.RoleSalesMember}, rbac.RouteOrders)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestGuardAuthorizedRendersChildren(t *testing.T) {
	r := newAuthedRouter("user-1", stubResolver{role: rbac.RoleSalesMember}, rbac.RouteLeads)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["role"] != string(rbac.RoleSalesMember) {
		t.Errorf("resolved role in context = %q, want sales_member", body["role"])
	}
}

func TestLoginPathFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/admin/products", "/admin/products/login"},
		{"/admin/leads", "/admin/leads/login"},
		{"/admin/leads/42", "/admin/leads/login"},
		{"/admin/", "/admin/admin/login"},
		{"/admin", "/admin/admin/login"},
		{"/somewhere/else", "/admin/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := LoginPathFor(tt.path); got != tt.expected {
				t.Errorf("LoginPathFor(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}
