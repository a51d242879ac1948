package usecase

import (
	"context"
	"log"
	"sync"

	"pactle_quotations/internal/domain/entities"
)

// OptimisticUpdateCoordinator owns the displayed copies of quotations (the
// list page and the currently open detail) and keeps them converged with the
// canonical store across optimistic status changes.
//
// The displayed state is a disposable shadow, never the system of record: a
// status change is applied locally first, then issued to the workflow; on
// success the authoritative record (with its refreshed history, lastUpdated
// and rejectionReason) replaces the shadow, on failure the previous status is
// restored on every displayed copy and the history is left untouched.
//
// Only one in-flight mutation per quotation id is assumed from a given view.
// Racing completions reconcile last-response-wins; nothing is queued,
// debounced or cancelled.
type OptimisticUpdateCoordinator struct {
	workflow IStatusWorkflowUseCase
	comments ICommentUseCase

	mu      sync.Mutex
	list    []entities.Quotation
	current *entities.Quotation
}

func NewOptimisticUpdateCoordinator(workflow IStatusWorkflowUseCase, comments ICommentUseCase) *OptimisticUpdateCoordinator {
	return &OptimisticUpdateCoordinator{workflow: workflow, comments: comments}
}

// SetList replaces the displayed list page.
func (c *OptimisticUpdateCoordinator) SetList(items []entities.Quotation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = make([]entities.Quotation, len(items))
	copy(c.list, items)
}

// SetCurrent replaces the displayed detail record.
func (c *OptimisticUpdateCoordinator) SetCurrent(q entities.Quotation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := q
	c.current = &cp
}

// List returns a copy of the displayed list page.
func (c *OptimisticUpdateCoordinator) List() []entities.Quotation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.Quotation, len(c.list))
	copy(out, c.list)
	return out
}

// Current returns a copy of the displayed detail record, if any.
func (c *OptimisticUpdateCoordinator) Current() (entities.Quotation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return entities.Quotation{}, false
	}
	return *c.current, true
}

// ChangeStatus applies next to every displayed copy of id, issues the
// authoritative transition, and reconciles. The returned quotation is the
// authoritative record on success.
func (c *OptimisticUpdateCoordinator) ChangeStatus(ctx context.Context, id string, next entities.QuotationStatus, actor entities.Actor, reason string) (entities.Quotation, error) {
	previous, displayed := c.applyStatus(id, next)

	updated, err := c.workflow.Transition(ctx, id, next, actor, reason)
	if err != nil {
		if displayed {
			c.restoreStatus(id, previous)
			log.Printf("[coordinator][usecase] rollback id=%s restored=%s err=%v", id, previous, err)
		}
		return entities.Quotation{}, err
	}

	c.replace(updated)
	return updated, nil
}

// AddComment posts a comment and, once confirmed, splices it into the
// displayed detail. Comments are not applied optimistically.
func (c *OptimisticUpdateCoordinator) AddComment(ctx context.Context, id string, actor entities.Actor, text string) (entities.Comment, error) {
	created, err := c.comments.AddComment(ctx, id, actor, text)
	if err != nil {
		return entities.Comment{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		c.current.Comments = append(c.current.Comments, created)
		c.current.LastUpdated = created.Timestamp
	}
	return created, nil
}

// AddReply posts a reply and splices it under the displayed comment.
func (c *OptimisticUpdateCoordinator) AddReply(ctx context.Context, id string, commentID int, actor entities.Actor, text string) (entities.Reply, error) {
	created, err := c.comments.AddReply(ctx, id, commentID, actor, text)
	if err != nil {
		return entities.Reply{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && c.current.ID == id {
		for i := range c.current.Comments {
			if c.current.Comments[i].ID == commentID {
				c.current.Comments[i].Replies = append(c.current.Comments[i].Replies, created)
				break
			}
		}
		c.current.LastUpdated = created.Timestamp
	}
	return created, nil
}

// applyStatus writes next onto every displayed copy of id and reports the
// previous displayed status. displayed is false when id is not on screen, in
// which case there is nothing to roll back.
func (c *OptimisticUpdateCoordinator) applyStatus(id string, next entities.QuotationStatus) (previous entities.QuotationStatus, displayed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.list {
		if c.list[i].ID == id {
			previous = c.list[i].Status
			displayed = true
			c.list[i].Status = next
		}
	}
	if c.current != nil && c.current.ID == id {
		if !displayed {
			previous = c.current.Status
			displayed = true
		}
		c.current.Status = next
	}
	return previous, displayed
}

// restoreStatus puts the captured previous status back on every displayed
// copy. Status only; the shadow never carries a speculative history entry.
func (c *OptimisticUpdateCoordinator) restoreStatus(id string, previous entities.QuotationStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.list {
		if c.list[i].ID == id {
			c.list[i].Status = previous
		}
	}
	if c.current != nil && c.current.ID == id {
		c.current.Status = previous
	}
}

// replace swaps the authoritative record into every displayed copy.
func (c *OptimisticUpdateCoordinator) replace(q entities.Quotation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.list {
		if c.list[i].ID == q.ID {
			c.list[i] = q
		}
	}
	if c.current != nil && c.current.ID == q.ID {
		cp := q
		c.current = &cp
	}
}
