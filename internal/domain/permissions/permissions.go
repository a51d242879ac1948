package permissions

import "pactle_quotations/internal/domain/entities"

// Role-based capability mapping. Pure functions, no side effects, no failure
// modes; everything that mutates a quotation asks this package first.

// CanEdit reports whether role may edit quotation fields.
func CanEdit(role entities.Role) bool {
	return role == entities.RoleManager
}

// CanApprove reports whether role may move a quotation with the given current
// status to Approved. A rejected quotation can still be approved; only an
// already-approved one cannot.
func CanApprove(role entities.Role, status entities.QuotationStatus) bool {
	return role == entities.RoleManager && status != entities.QuotationStatusApproved
}

// CanReject is the mirror of CanApprove for the Rejected target.
func CanReject(role entities.Role, status entities.QuotationStatus) bool {
	return role == entities.RoleManager && status != entities.QuotationStatusRejected
}

// CanComment reports whether role may post top-level comments.
func CanComment(role entities.Role) bool {
	return role == entities.RoleManager || role == entities.RoleSalesRep
}

// CanReply reports whether role may reply to a comment.
func CanReply(role entities.Role) bool {
	return role == entities.RoleManager
}

// CanViewReply reports whether a viewer may see a reply authored by
// replierRole. Replies are visible to same-role viewers and to managers.
func CanViewReply(viewerRole, replierRole entities.Role) bool {
	return viewerRole == replierRole || viewerRole == entities.RoleManager
}

// IsReadOnly reports whether role has no mutating capability at all.
func IsReadOnly(role entities.Role) bool {
	return role == entities.RoleViewer
}

// Actions bundles the capability set for a (role, status) pair, handy for
// API responses that drive action buttons.
type Actions struct {
	CanEdit    bool `json:"canEdit"`
	CanApprove bool `json:"canApprove"`
	CanReject  bool `json:"canReject"`
	CanComment bool `json:"canComment"`
	CanReply   bool `json:"canReply"`
}

// AvailableActions evaluates every capability for role against the
// quotation's current status.
func AvailableActions(role entities.Role, status entities.QuotationStatus) Actions {
	return Actions{
		CanEdit:    CanEdit(role),
		CanApprove: CanApprove(role, status),
		CanReject:  CanReject(role, status),
		CanComment: CanComment(role),
		CanReply:   CanReply(role),
	}
}
