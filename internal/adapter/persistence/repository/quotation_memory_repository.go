package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"
)

// unknownActorName attributes history entries when no actor accompanies a
// status-changing update.
const unknownActorName = "Unknown User"

// QuotationMemoryRepository is a map-backed quotation store used by tests and
// the local demo mode. It honors the same contract as the DynamoDB adapter:
// zero-value results for missing records, one history entry per status
// change, repository-allocated comment and reply ids.
//
// WriteDelay simulates backend latency on mutations; the fault injector, when
// set, fails writes with ErrTransientFailure to exercise rollback paths.
type QuotationMemoryRepository struct {
	mu         sync.Mutex
	records    map[string]*entities.Quotation
	faults     interfaces.IFaultInjector
	writeDelay time.Duration
	now        func() time.Time
}

var _ interfaces.IQuotationRepository = (*QuotationMemoryRepository)(nil)

func NewQuotationMemoryRepository() *QuotationMemoryRepository {
	return &QuotationMemoryRepository{
		records: make(map[string]*entities.Quotation),
		now:     time.Now,
	}
}

// WithFaults installs a write-failure strategy.
func (r *QuotationMemoryRepository) WithFaults(f interfaces.IFaultInjector) *QuotationMemoryRepository {
	r.faults = f
	return r
}

// WithWriteDelay makes every mutation wait d before applying, to mimic the
// ~1s backend latency of the demo deployment.
func (r *QuotationMemoryRepository) WithWriteDelay(d time.Duration) *QuotationMemoryRepository {
	r.writeDelay = d
	return r
}

// WithClock overrides the time source. Test hook.
func (r *QuotationMemoryRepository) WithClock(now func() time.Time) *QuotationMemoryRepository {
	r.now = now
	return r
}

// Put inserts or replaces a record. Seeding helper.
func (r *QuotationMemoryRepository) Put(q entities.Quotation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := cloneQuotation(q)
	r.records[q.ID] = &cp
}

func (r *QuotationMemoryRepository) List(ctx context.Context, filter interfaces.ListFilter, page, pageSize int) (interfaces.Page, error) {
	r.mu.Lock()
	matched := make([]entities.Quotation, 0, len(r.records))
	search := strings.ToLower(filter.Search)
	for _, q := range r.records {
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Client), search) &&
			!strings.Contains(strings.ToLower(q.ID), search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(q.Status) != filter.Status {
			continue
		}
		matched = append(matched, cloneQuotation(*q))
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return interfaces.Page{
		Items:      matched[start:end],
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (r *QuotationMemoryRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.records[id]
	if !ok {
		return entities.Quotation{}, nil
	}
	return cloneQuotation(*q), nil
}

func (r *QuotationMemoryRepository) Update(ctx context.Context, id string, patch interfaces.QuotationPatch, actor *entities.Actor) (entities.Quotation, error) {
	if err := r.beginWrite(ctx); err != nil {
		return entities.Quotation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.records[id]
	if !ok {
		return entities.Quotation{}, nil
	}

	now := r.now().UTC()
	if patch.Status != nil && *patch.Status != q.Status {
		q.Status = *patch.Status
		entry := entities.StatusHistoryEntry{
			Status:    q.Status,
			ChangedBy: unknownActorName,
			ChangedAt: now,
		}
		if actor != nil && actor.Name != "" {
			entry.ChangedBy = actor.Name
		}
		if patch.Reason != nil {
			entry.Reason = *patch.Reason
		}
		q.StatusHistory = append(q.StatusHistory, entry)
	}
	if patch.Client != nil {
		q.Client = *patch.Client
	}
	if patch.Amount != nil {
		q.Amount = *patch.Amount
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.RejectionReason != nil {
		q.RejectionReason = *patch.RejectionReason
	}
	q.LastUpdated = now

	return cloneQuotation(*q), nil
}

func (r *QuotationMemoryRepository) AddComment(ctx context.Context, quotationID string, author string, role entities.Role, text string) (entities.Comment, error) {
	if err := r.beginWrite(ctx); err != nil {
		return entities.Comment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.records[quotationID]
	if !ok {
		return entities.Comment{}, nil
	}

	c := entities.Comment{
		ID:        nextCommentID(q.Comments),
		Author:    author,
		Role:      role,
		Text:      text,
		Timestamp: r.now().UTC(),
		Replies:   []entities.Reply{},
	}
	q.Comments = append(q.Comments, c)
	q.LastUpdated = c.Timestamp
	return c, nil
}

func (r *QuotationMemoryRepository) AddReply(ctx context.Context, quotationID string, commentID int, author string, role entities.Role, text string) (entities.Reply, error) {
	if err := r.beginWrite(ctx); err != nil {
		return entities.Reply{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.records[quotationID]
	if !ok {
		return entities.Reply{}, nil
	}

	for i := range q.Comments {
		if q.Comments[i].ID != commentID {
			continue
		}
		reply := entities.Reply{
			ID:        nextReplyID(q.Comments[i].Replies),
			Author:    author,
			Role:      role,
			Text:      text,
			Timestamp: r.now().UTC(),
		}
		q.Comments[i].Replies = append(q.Comments[i].Replies, reply)
		q.LastUpdated = reply.Timestamp
		return reply, nil
	}
	return entities.Reply{}, nil
}

// beginWrite applies the simulated latency and the fault strategy shared by
// every mutation.
func (r *QuotationMemoryRepository) beginWrite(ctx context.Context) error {
	if r.writeDelay > 0 {
		select {
		case <-time.After(r.writeDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if r.faults != nil && r.faults.ShouldFail() {
		return interfaces.ErrTransientFailure
	}
	return nil
}

// cloneQuotation deep-copies the aggregate so callers never share backing
// arrays with the stored record. Without it, appends on a returned slice can
// write through to the store outside the repository mutex.
func cloneQuotation(q entities.Quotation) entities.Quotation {
	cp := q
	if q.LineItems != nil {
		cp.LineItems = append([]entities.LineItem(nil), q.LineItems...)
	}
	if q.StatusHistory != nil {
		cp.StatusHistory = append([]entities.StatusHistoryEntry(nil), q.StatusHistory...)
	}
	if q.Comments != nil {
		cp.Comments = make([]entities.Comment, len(q.Comments))
		for i, c := range q.Comments {
			cc := c
			if c.Replies != nil {
				cc.Replies = append([]entities.Reply(nil), c.Replies...)
			}
			cp.Comments[i] = cc
		}
	}
	return cp
}

func nextCommentID(comments []entities.Comment) int {
	next := 1
	for _, c := range comments {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

func nextReplyID(replies []entities.Reply) int {
	next := 1
	for _, r := range replies {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return next
}
