package interfaces

import (
	"context"
	"errors"

	"pactle_quotations/internal/domain/entities"
)

// ErrTransientFailure is returned by repository writes when the backing store
// (or the injected fault strategy standing in for it) fails a structurally
// valid request. Callers roll back optimistic state and surface the failure;
// there is no automatic retry.
var ErrTransientFailure = errors.New("transient backend failure")

// ListFilter narrows a quotation listing. Search matches case-insensitively
// against client name or id substring. Status "all" or empty means no status
// filter.
type ListFilter struct {
	Search string
	Status string
}

// Page is one page of a quotation listing. TotalPages is
// ceil(TotalItems/pageSize) for the requested page size.
type Page struct {
	Items      []entities.Quotation
	TotalItems int
	TotalPages int
}

// QuotationPatch carries the partial fields of an update. Nil means
// "leave untouched". Reason travels with a status change and is recorded on
// the appended history entry; RejectionReason writes the quotation field
// itself and is never cleared by a later transition.
type QuotationPatch struct {
	Status          *entities.QuotationStatus
	Reason          *string
	Client          *string
	Amount          *float64
	Description     *string
	RejectionReason *string
}

// IQuotationRepository abstracts persistence for the quotation aggregate.
//
// The repository owns the canonical records and the allocation of comment and
// reply ids, but it does not validate permissions or transition rules; that
// is the status workflow's job. Missing records come back as zero-value
// entities, mirroring the DynamoDB adapter's conditional-write behavior.
//
// Update refreshes last_updated and, when the patch changes status, appends
// one StatusHistoryEntry attributed to actor (or the "Unknown User" sentinel
// when actor is nil).

type IQuotationRepository interface {
	List(ctx context.Context, filter ListFilter, page, pageSize int) (Page, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Update(ctx context.Context, id string, patch QuotationPatch, actor *entities.Actor) (entities.Quotation, error)
	AddComment(ctx context.Context, quotationID string, author string, role entities.Role, text string) (entities.Comment, error)
	AddReply(ctx context.Context, quotationID string, commentID int, author string, role entities.Role, text string) (entities.Reply, error)
}
