package interfaces

import "context"

// CommentDraft is the in-progress comment body and any in-progress reply
// bodies for one quotation. Replies are keyed by comment id.
type CommentDraft struct {
	Comment string         `json:"comment"`
	Replies map[int]string `json:"replies,omitempty"`
}

// IDraftStore persists best-effort comment drafts per quotation id. Drafts
// carry no correctness invariants and may be silently lost.

type IDraftStore interface {
	GetDraft(ctx context.Context, quotationID string) (CommentDraft, error)
	SetDraft(ctx context.Context, quotationID string, draft CommentDraft) error
	ClearDraft(ctx context.Context, quotationID string) error
}
