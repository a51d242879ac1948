package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"pactle_quotations/internal/usecase/interfaces"
)

// DraftSaveInterval is the minimum spacing between persisted draft writes for
// one quotation while the author keeps typing.
const DraftSaveInterval = 2 * time.Second

// DraftUseCase persists in-progress comment and reply bodies, debounced per
// quotation id. Drafts are best-effort: store errors are logged and swallowed,
// and a skipped write is buffered so Flush can pick it up.
type DraftUseCase struct {
	store interfaces.IDraftStore
	now   func() time.Time

	mu        sync.Mutex
	lastWrite map[string]time.Time
	pending   map[string]interfaces.CommentDraft
}

func NewDraftUseCase(store interfaces.IDraftStore) *DraftUseCase {
	return &DraftUseCase{
		store:     store,
		now:       time.Now,
		lastWrite: make(map[string]time.Time),
		pending:   make(map[string]interfaces.CommentDraft),
	}
}

// WithClock overrides the time source. Test hook.
func (u *DraftUseCase) WithClock(now func() time.Time) *DraftUseCase {
	u.now = now
	return u
}

// Save records the draft for quotationID. Writes are spaced at least
// DraftSaveInterval apart; a draft arriving inside the window is kept in
// memory and written by the next Save or Flush.
func (u *DraftUseCase) Save(ctx context.Context, quotationID string, draft interfaces.CommentDraft) {
	u.mu.Lock()
	last, seen := u.lastWrite[quotationID]
	if seen && u.now().Sub(last) < DraftSaveInterval {
		u.pending[quotationID] = draft
		u.mu.Unlock()
		return
	}
	u.lastWrite[quotationID] = u.now()
	delete(u.pending, quotationID)
	u.mu.Unlock()

	if err := u.store.SetDraft(ctx, quotationID, draft); err != nil {
		log.Printf("[draft][usecase] save failed quotation_id=%s err=%v", quotationID, err)
	}
}

// Flush writes any buffered draft for quotationID immediately.
func (u *DraftUseCase) Flush(ctx context.Context, quotationID string) {
	u.mu.Lock()
	draft, ok := u.pending[quotationID]
	if ok {
		delete(u.pending, quotationID)
		u.lastWrite[quotationID] = u.now()
	}
	u.mu.Unlock()
	if !ok {
		return
	}
	if err := u.store.SetDraft(ctx, quotationID, draft); err != nil {
		log.Printf("[draft][usecase] flush failed quotation_id=%s err=%v", quotationID, err)
	}
}

// Load returns the persisted draft for quotationID, preferring a buffered
// one not yet written.
func (u *DraftUseCase) Load(ctx context.Context, quotationID string) interfaces.CommentDraft {
	u.mu.Lock()
	if draft, ok := u.pending[quotationID]; ok {
		u.mu.Unlock()
		return draft
	}
	u.mu.Unlock()

	draft, err := u.store.GetDraft(ctx, quotationID)
	if err != nil {
		log.Printf("[draft][usecase] load failed quotation_id=%s err=%v", quotationID, err)
		return interfaces.CommentDraft{}
	}
	return draft
}

// ClearCommentField drops the top-level comment body after a successful
// submit, keeping any reply drafts.
func (u *DraftUseCase) ClearCommentField(ctx context.Context, quotationID string) {
	u.clearField(ctx, quotationID, func(d *interfaces.CommentDraft) {
		d.Comment = ""
	})
}

// ClearReplyField drops the reply body for commentID after a successful
// submit.
func (u *DraftUseCase) ClearReplyField(ctx context.Context, quotationID string, commentID int) {
	u.clearField(ctx, quotationID, func(d *interfaces.CommentDraft) {
		delete(d.Replies, commentID)
	})
}

// clearField bypasses the debounce window: submits clear their field
// immediately so a stale draft never resurfaces.
func (u *DraftUseCase) clearField(ctx context.Context, quotationID string, mutate func(*interfaces.CommentDraft)) {
	draft := u.Load(ctx, quotationID)
	mutate(&draft)

	u.mu.Lock()
	delete(u.pending, quotationID)
	u.lastWrite[quotationID] = u.now()
	u.mu.Unlock()

	var err error
	if draft.Comment == "" && len(draft.Replies) == 0 {
		err = u.store.ClearDraft(ctx, quotationID)
	} else {
		err = u.store.SetDraft(ctx, quotationID, draft)
	}
	if err != nil {
		log.Printf("[draft][usecase] clear failed quotation_id=%s err=%v", quotationID, err)
	}
}
