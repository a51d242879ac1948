package usecase

import (
	"context"
	"errors"
	"strings"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/domain/permissions"
	"pactle_quotations/internal/usecase/interfaces"
)

var (
	ErrCommentNotFound   = errors.New("comment not found")
	ErrEmptyCommentText  = errors.New("comment text must not be empty")
	ErrCommentNotAllowed = errors.New("role not allowed to comment")
	ErrReplyNotAllowed   = errors.New("role not allowed to reply")
)

// ICommentUseCase exposes the threaded-comment operations on a quotation.

type ICommentUseCase interface {
	AddComment(ctx context.Context, quotationID string, actor entities.Actor, text string) (entities.Comment, error)
	AddReply(ctx context.Context, quotationID string, commentID int, actor entities.Actor, text string) (entities.Reply, error)
}

type CommentUseCase struct {
	repo interfaces.IQuotationRepository
}

var _ ICommentUseCase = (*CommentUseCase)(nil)

func NewCommentUseCase(repo interfaces.IQuotationRepository) *CommentUseCase {
	return &CommentUseCase{repo: repo}
}

// AddComment appends a new top-level comment. Validation and the permission
// check resolve before any repository write is attempted.
func (u *CommentUseCase) AddComment(ctx context.Context, quotationID string, actor entities.Actor, text string) (entities.Comment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Comment{}, ErrInvalidQuotationID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Comment{}, ErrEmptyCommentText
	}
	if !permissions.CanComment(actor.Role) {
		return entities.Comment{}, ErrCommentNotAllowed
	}

	created, err := u.repo.AddComment(ctx, quotationID, actor.Name, actor.Role, text)
	if err != nil {
		return entities.Comment{}, err
	}
	if created.ID == 0 {
		return entities.Comment{}, ErrQuotationNotFound
	}
	return created, nil
}

// AddReply appends a reply under an existing comment.
func (u *CommentUseCase) AddReply(ctx context.Context, quotationID string, commentID int, actor entities.Actor, text string) (entities.Reply, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return entities.Reply{}, ErrInvalidQuotationID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Reply{}, ErrEmptyCommentText
	}
	if !permissions.CanReply(actor.Role) {
		return entities.Reply{}, ErrReplyNotAllowed
	}

	q, err := u.repo.GetByID(ctx, quotationID)
	if err != nil {
		return entities.Reply{}, err
	}
	if q.ID == "" {
		return entities.Reply{}, ErrQuotationNotFound
	}
	if !hasComment(q, commentID) {
		return entities.Reply{}, ErrCommentNotFound
	}

	created, err := u.repo.AddReply(ctx, quotationID, commentID, actor.Name, actor.Role, text)
	if err != nil {
		return entities.Reply{}, err
	}
	if created.ID == 0 {
		return entities.Reply{}, ErrCommentNotFound
	}
	return created, nil
}

// VisibleReplies returns the ordered sub-sequence of the comment's replies
// the viewer may see. All replies stay persisted; this is a read-time filter
// evaluated per viewer.
func VisibleReplies(c entities.Comment, viewerRole entities.Role) []entities.Reply {
	out := make([]entities.Reply, 0, len(c.Replies))
	for _, r := range c.Replies {
		if permissions.CanViewReply(viewerRole, r.Role) {
			out = append(out, r)
		}
	}
	return out
}

func hasComment(q entities.Quotation, commentID int) bool {
	for _, c := range q.Comments {
		if c.ID == commentID {
			return true
		}
	}
	return false
}
