// Package rbac holds the role enumeration and the fixed capability tables
// consulted by route guards and admin handlers. Every call site goes through
// this package; no handler declares its own allow-list literal.
package rbac

import "errors"

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleSalesMember Role = "sales_member"
	RoleCustomer    Role = "customer"

	// RoleNone represents an unauthenticated or unresolvable principal.
	RoleNone Role = ""
)

// ParseRole maps a stored role string into the closed enumeration. Anything
// outside it resolves to RoleNone with an error: unrecognized roles get the
// lowest privilege, never a guessed one.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMember, RoleCustomer:
		return Role(s), nil
	default:
		return RoleNone, ErrUnknownRole
	}
}

// Privileged reports whether the role may enter the admin surface at all.
func (r Role) Privileged() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMember:
		return true
	default:
		return false
	}
}

// PrivilegedRoles returns the back-office roles in rank order. The returned
// slice must not be mutated.
func PrivilegedRoles() []Role {
	return privilegedRoles
}

var privilegedRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMember}

// Admin route keys. These double as the screen keys for action checks.
const (
	RouteProducts   = "products"
	RouteCategories = "categories"
	RouteOrders     = "orders"
	RouteCustomers  = "customers"
	RouteTeam       = "team"
	RouteLeads      = "leads"
	RouteAnalytics  = "analytics"
	RouteSettings   = "settings"
)

// Actions within a screen.
const (
	ActionCreate       = "create"
	ActionEdit         = "edit"
	ActionAssign       = "assign"
	ActionDelete       = "delete"
	ActionUpdateStatus = "update_status"
)

// routeOrder fixes the navigation order; DefaultRouteFor returns the first
// entry the role may access.
var routeOrder = []string{
	RouteProducts,
	RouteCategories,
	RouteOrders,
	RouteCustomers,
	RouteTeam,
	RouteLeads,
	RouteAnalytics,
	RouteSettings,
}

// Each route declares its own explicit allow-list. The sets happen to nest
// along the role hierarchy but are looked up verbatim, not via thresholds.
var routeCapabilities = map[string][]Role{
	RouteProducts:   {RoleSuperAdmin, RoleAdmin, RoleManager},
	RouteCategories: {RoleSuperAdmin, RoleAdmin, RoleManager},
	RouteOrders:     {RoleSuperAdmin, RoleAdmin},
	RouteCustomers:  {RoleSuperAdmin, RoleAdmin},
	RouteTeam:       {RoleSuperAdmin, RoleAdmin, RoleManager},
	RouteLeads:      {RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMember},
	RouteAnalytics:  {RoleSuperAdmin, RoleAdmin},
	RouteSettings:   {RoleSuperAdmin, RoleAdmin},
}

// Per-screen action allow-lists. A sales_member may update the status of a
// lead assigned to them (the assignment check lives with the handler, which
// knows the record) but may never edit, reassign or delete.
var actionCapabilities = map[string]map[string][]Role{
	RouteProducts: {
		ActionCreate: {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionEdit:   {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionDelete: {RoleSuperAdmin, RoleAdmin, RoleManager},
	},
	RouteCategories: {
		ActionCreate: {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionEdit:   {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionDelete: {RoleSuperAdmin, RoleAdmin, RoleManager},
	},
	RouteOrders: {
		ActionEdit:         {RoleSuperAdmin, RoleAdmin},
		ActionUpdateStatus: {RoleSuperAdmin, RoleAdmin},
		ActionDelete:       {RoleSuperAdmin, RoleAdmin},
	},
	RouteCustomers: {
		ActionEdit:   {RoleSuperAdmin, RoleAdmin},
		ActionDelete: {RoleSuperAdmin, RoleAdmin},
	},
	RouteTeam: {
		ActionCreate: {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionEdit:   {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionDelete: {RoleSuperAdmin, RoleAdmin},
	},
	RouteLeads: {
		ActionCreate:       {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionEdit:         {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionAssign:       {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionDelete:       {RoleSuperAdmin, RoleAdmin, RoleManager},
		ActionUpdateStatus: {RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesMember},
	},
	RouteSettings: {
		ActionEdit: {RoleSuperAdmin, RoleAdmin},
	},
}

// assignableRoles is the team-creation sub-policy: which roles an actor may
// hand out when creating or editing a team member. Strictly narrower than the
// actor's own capability set.
var assignableRoles = map[Role][]Role{
	RoleSuperAdmin: {RoleAdmin, RoleManager, RoleSalesMember},
	RoleAdmin:      {RoleManager, RoleSalesMember},
	RoleManager:    {RoleSalesMember},
}

// assigneeRoles lists which roles an actor may pick as a lead assignee.
var assigneeRoles = map[Role][]Role{
	RoleSuperAdmin: {RoleManager, RoleSalesMember},
	RoleAdmin:      {RoleManager, RoleSalesMember},
	RoleManager:    {RoleSalesMember},
}

// Lookup maps built once from the declaration tables above.
var (
	routeAllowed  map[string]map[Role]bool
	actionAllowed map[string]map[string]map[Role]bool
)

func init() {
	routeAllowed = make(map[string]map[Role]bool, len(routeCapabilities))
	for route, roles := range routeCapabilities {
		routeAllowed[route] = make(map[Role]bool, len(roles))
		for _, r := range roles {
			routeAllowed[route][r] = true
		}
	}
	actionAllowed = make(map[string]map[string]map[Role]bool, len(actionCapabilities))
	for screen, actions := range actionCapabilities {
		actionAllowed[screen] = make(map[string]map[Role]bool, len(actions))
		for action, roles := range actions {
			actionAllowed[screen][action] = make(map[Role]bool, len(roles))
			for _, r := range roles {
				actionAllowed[screen][action][r] = true
			}
		}
	}
}

// CanAccessRoute reports whether the role may navigate to the admin route.
// Unknown routes are denied.
func CanAccessRoute(role Role, routeKey string) bool {
	return routeAllowed[routeKey][role]
}

// CanPerformAction reports whether the role may perform the action on the
// screen. Unknown screens and actions are denied.
func CanPerformAction(role Role, screenKey, actionKey string) bool {
	return actionAllowed[screenKey][actionKey][role]
}

// DefaultRouteFor returns the first admin route in navigation order the role
// may access, used as the post-login landing. Leads is the fallback since
// every privileged role may reach it.
func DefaultRouteFor(role Role) string {
	for _, route := range routeOrder {
		if CanAccessRoute(role, route) {
			return route
		}
	}
	return RouteLeads
}

// AssignableRoles returns the roles the actor may assign to a team member.
// The returned slice must not be mutated.
func AssignableRoles(actor Role) []Role {
	return assignableRoles[actor]
}

// CanAssignRole reports whether the actor may hand out the target role when
// creating or editing a team member.
func CanAssignRole(actor, target Role) bool {
	for _, r := range assignableRoles[actor] {
		if r == target {
			return true
		}
	}
	return false
}

// AssigneeRoles returns the roles the actor may choose as a lead assignee.
func AssigneeRoles(actor Role) []Role {
	return assigneeRoles[actor]
}
