package request

import (
	"strings"

	"pactle_quotations/internal/domain/entities"
)

// ListQuotationsRequest carries the listing query string.
type ListQuotationsRequest struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ActorRequest identifies who performs a mutation, attributed in the audit
// trail. Optional on PATCH; missing actors are recorded as "Unknown User".
type ActorRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

func (a *ActorRequest) ToActor() *entities.Actor {
	if a == nil {
		return nil
	}
	return &entities.Actor{
		Name: strings.TrimSpace(a.Name),
		Role: entities.Role(strings.TrimSpace(a.Role)),
	}
}

// UpdateQuotationRequest is the PATCH payload: any subset of the editable
// fields, plus the optional actor. A present status field turns the request
// into a workflow transition.
type UpdateQuotationRequest struct {
	Status          *string       `json:"status"`
	Client          *string       `json:"client"`
	Amount          *float64      `json:"amount"`
	Description     *string       `json:"description"`
	RejectionReason *string       `json:"rejectionReason"`
	Actor           *ActorRequest `json:"actor"`
}

// IsTransition reports whether the patch asks for a status change.
func (r UpdateQuotationRequest) IsTransition() bool {
	return r.Status != nil && strings.TrimSpace(*r.Status) != ""
}

// TransitionReason resolves the audit reason accompanying a status change.
func (r UpdateQuotationRequest) TransitionReason() string {
	if r.RejectionReason == nil {
		return ""
	}
	return strings.TrimSpace(*r.RejectionReason)
}
