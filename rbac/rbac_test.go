package rbac

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Role
		shouldErr bool
	}{
		{"super admin", "super_admin", RoleSuperAdmin, false},
		{"admin", "admin", RoleAdmin, false},
		{"manager", "manager", RoleManager, false},
		{"sales member", "sales_member", RoleSalesMember, false},
		{"customer", "customer", RoleCustomer, false},
		{"empty", "", RoleNone, true},
		{"unknown", "root", RoleNone, true},
		{"case sensitive", "Admin", RoleNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.shouldErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) expected error, got nil", tt.input)
				}
				if !errors.Is(err, ErrUnknownRole) {
					t.Errorf("ParseRole(%q) error = %v, want ErrUnknownRole", tt.input, err)
				}
			} else if err != nil {
				t.Fatalf("ParseRole(%q) unexpected error: %v", tt.input, err)
			}
			if role != tt.expected {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, role, tt.expected)
			}
		})
	}
}

func TestCanAccessRoute(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		route    string
		expected bool
	}{
		{"super_admin products", RoleSuperAdmin, RouteProducts, true},
		{"super_admin settings", RoleSuperAdmin, RouteSettings, true},
		{"admin orders", RoleAdmin, RouteOrders, true},
		{"manager products", RoleManager, RouteProducts, true},
		{"manager team", RoleManager, RouteTeam, true},
		{"manager orders denied", RoleManager, RouteOrders, false},
		{"manager settings denied", RoleManager, RouteSettings, false},
		{"sales_member leads", RoleSalesMember, RouteLeads, true},
		{"sales_member orders denied", RoleSalesMember, RouteOrders, false},
		{"sales_member customers denied", RoleSalesMember, RouteCustomers, false},
		{"sales_member analytics denied", RoleSalesMember, RouteAnalytics, false},
		{"sales_member settings denied", RoleSalesMember, RouteSettings, false},
		{"sales_member products denied", RoleSalesMember, RouteProducts, false},
		{"customer denied everywhere", RoleCustomer, RouteLeads, false},
		{"unauthenticated denied", RoleNone, RouteProducts, false},
		{"unknown route denied", RoleSuperAdmin, "billing", false},
		{"empty route denied", RoleSuperAdmin, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessRoute(tt.role, tt.route); got != tt.expected {
				t.Errorf("CanAccessRoute(%q, %q) = %v, want %v", tt.role, tt.route, got, tt.expected)
			}
		})
	}
}

func TestCanAccessRouteIsIdempotent(t *testing.T) {
	first := CanAccessRoute(RoleManager, RouteTeam)
	for i := 0; i < 100; i++ {
		if got := CanAccessRoute(RoleManager, RouteTeam); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestCanPerformAction(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		screen   string
		action   string
		expected bool
	}{
		{"manager edits lead", RoleManager, RouteLeads, ActionEdit, true},
		{"manager assigns lead", RoleManager, RouteLeads, ActionAssign, true},
		{"sales_member cannot edit lead", RoleSalesMember, RouteLeads, ActionEdit, false},
		{"sales_member cannot assign lead", RoleSalesMember, RouteLeads, ActionAssign, false},
		{"sales_member may update lead status", RoleSalesMember, RouteLeads, ActionUpdateStatus, true},
		{"manager cannot delete team member", RoleManager, RouteTeam, ActionDelete, false},
		{"admin deletes team member", RoleAdmin, RouteTeam, ActionDelete, true},
		{"manager creates product", RoleManager, RouteProducts, ActionCreate, true},
		{"manager cannot edit settings", RoleManager, RouteSettings, ActionEdit, false},
		{"admin edits settings", RoleAdmin, RouteSettings, ActionEdit, true},
		{"customer denied", RoleCustomer, RouteLeads, ActionUpdateStatus, false},
		{"unknown screen denied", RoleSuperAdmin, "billing", ActionEdit, false},
		{"unknown action denied", RoleSuperAdmin, RouteLeads, "approve", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPerformAction(tt.role, tt.screen, tt.action); got != tt.expected {
				t.Errorf("CanPerformAction(%q, %q, %q) = %v, want %v",
					tt.role, tt.screen, tt.action, got, tt.expected)
			}
		})
	}
}

func TestDefaultRouteFor(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{RoleSuperAdmin, RouteProducts},
		{RoleAdmin, RouteProducts},
		{RoleManager, RouteProducts},
		{RoleSalesMember, RouteLeads},
		{RoleCustomer, RouteLeads}, // fallback; the guard denies before this matters
		{RoleNone, RouteLeads},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := DefaultRouteFor(tt.role); got != tt.expected {
				t.Errorf("DefaultRouteFor(%q) = %q, want %q", tt.role, got, tt.expected)
			}
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	tests := []struct {
		name     string
		actor    Role
		target   Role
		expected bool
	}{
		{"super_admin assigns admin", RoleSuperAdmin, RoleAdmin, true},
		{"super_admin assigns manager", RoleSuperAdmin, RoleManager, true},
		{"super_admin assigns sales_member", RoleSuperAdmin, RoleSalesMember, true},
		{"super_admin cannot assign super_admin", RoleSuperAdmin, RoleSuperAdmin, false},
		{"admin assigns manager", RoleAdmin, RoleManager, true},
		{"admin cannot assign admin", RoleAdmin, RoleAdmin, false},
		{"manager assigns sales_member", RoleManager, RoleSalesMember, true},
		{"manager cannot assign manager", RoleManager, RoleManager, false},
		{"manager cannot assign admin", RoleManager, RoleAdmin, false},
		{"sales_member assigns nothing", RoleSalesMember, RoleSalesMember, false},
		{"customer assigns nothing", RoleCustomer, RoleSalesMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAssignRole(tt.actor, tt.target); got != tt.expected {
				t.Errorf("CanAssignRole(%q, %q) = %v, want %v", tt.actor, tt.target, got, tt.expected)
			}
		})
	}
}

func TestAssignableRoles(t *testing.T) {
	if got := AssignableRoles(RoleManager); len(got) != 1 || got[0] != RoleSalesMember {
		t.Errorf("AssignableRoles(manager) = %v, want [sales_member]", got)
	}
	if got := AssignableRoles(RoleSalesMember); len(got) != 0 {
		t.Errorf("AssignableRoles(sales_member) = %v, want empty", got)
	}
	if got := AssignableRoles(RoleSuperAdmin); len(got) != 3 {
		t.Errorf("AssignableRoles(super_admin) = %v, want 3 roles", got)
	}
}

func TestAssigneeRoles(t *testing.T) {
	for _, actor := range []Role{RoleSuperAdmin, RoleAdmin} {
		got := AssigneeRoles(actor)
		if len(got) != 2 || got[0] != RoleManager || got[1] != RoleSalesMember {
			t.Errorf("AssigneeRoles(%q) = %v, want [manager sales_member]", actor, got)
		}
	}
	if got := AssigneeRoles(RoleManager); len(got) != 1 || got[0] != RoleSalesMember {
		t.Errorf("AssigneeRoles(manager) = %v, want [sales_member]", got)
	}
	if got := AssigneeRoles(RoleSalesMember); len(got) != 0 {
		t.Errorf("AssigneeRoles(sales_member) = %v, want empty", got)
	}
}
