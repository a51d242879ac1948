package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/domain/permissions"
	"pactle_quotations/internal/usecase/interfaces"
)

var (
	ErrUnauthorizedRole = errors.New("role not allowed for this transition")
	ErrSameStatus       = errors.New("quotation already has the requested status")
	ErrUnknownStatus    = errors.New("unknown quotation status")
)

// IStatusWorkflowUseCase validates and executes quotation status transitions.

type IStatusWorkflowUseCase interface {
	Transition(ctx context.Context, id string, next entities.QuotationStatus, actor entities.Actor, reason string) (entities.Quotation, error)
}

// StatusWorkflowUseCase is the only path through which a status-changing
// write reaches storage. The permission policy is checked here, not in the
// repository, so every caller goes through the same gate.
type StatusWorkflowUseCase struct {
	repo interfaces.IQuotationRepository
}

var _ IStatusWorkflowUseCase = (*StatusWorkflowUseCase)(nil)

func NewStatusWorkflowUseCase(repo interfaces.IQuotationRepository) *StatusWorkflowUseCase {
	return &StatusWorkflowUseCase{repo: repo}
}

// Transition moves the quotation to next on behalf of actor. Exactly one
// history entry is appended per successful transition. A reason supplied on a
// rejection is also stored as the quotation's rejectionReason; transitioning
// away from Rejected leaves any prior rejectionReason untouched.
func (w *StatusWorkflowUseCase) Transition(ctx context.Context, id string, next entities.QuotationStatus, actor entities.Actor, reason string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if !next.IsValid() {
		return entities.Quotation{}, ErrUnknownStatus
	}

	current, err := w.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}

	if !transitionAllowed(actor.Role, current.Status, next) {
		log.Printf("[workflow][usecase] transition denied id=%s role=%s %s->%s", id, actor.Role, current.Status, next)
		return entities.Quotation{}, ErrUnauthorizedRole
	}
	if next == current.Status {
		return entities.Quotation{}, ErrSameStatus
	}

	patch := interfaces.QuotationPatch{Status: &next}
	reason = strings.TrimSpace(reason)
	if reason != "" {
		patch.Reason = &reason
		if next == entities.QuotationStatusRejected {
			patch.RejectionReason = &reason
		}
	}

	updated, err := w.repo.Update(ctx, id, patch, &actor)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	log.Printf("[workflow][usecase] transition applied id=%s role=%s %s->%s", id, actor.Role, current.Status, next)
	return updated, nil
}

// transitionAllowed keys approve/reject on the current status (toggle
// semantics). Pending has no dedicated capability; returning a quotation to
// Pending is gated on the edit capability.
func transitionAllowed(role entities.Role, current, next entities.QuotationStatus) bool {
	switch next {
	case entities.QuotationStatusApproved:
		return permissions.CanApprove(role, current)
	case entities.QuotationStatusRejected:
		return permissions.CanReject(role, current)
	case entities.QuotationStatusPending:
		return permissions.CanEdit(role)
	}
	return false
}
