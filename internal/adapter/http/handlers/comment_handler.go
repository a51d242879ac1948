package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "pactle_quotations/internal/adapter/http/dto/request"
	response "pactle_quotations/internal/adapter/http/dto/response"
	"pactle_quotations/internal/usecase"
	"pactle_quotations/internal/usecase/interfaces"
	"pactle_quotations/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCommentPayload = pkg.NewDomainErrorSimple("INVALID_COMMENT_INPUT", "Invalid comment payload", http.StatusBadRequest)
	errInvalidCommentID      = pkg.NewDomainErrorSimple("INVALID_COMMENT_ID", "Invalid comment id", http.StatusBadRequest)
)

// CommentHandler handles threaded comments and the best-effort draft
// endpoints.

type CommentHandler struct {
	comments usecase.ICommentUseCase
	drafts   *usecase.DraftUseCase
}

func NewCommentHandler(comments usecase.ICommentUseCase, drafts *usecase.DraftUseCase) *CommentHandler {
	return &CommentHandler{comments: comments, drafts: drafts}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommentPayload.HTTPStatus, errInvalidCommentPayload.ToHTTPError())
		return
	}

	quotationID := c.Param("id")
	created, err := h.comments.AddComment(c.Request.Context(), quotationID, payload.ToActor(), payload.Text)
	if err != nil {
		appErr := mapCommentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The comment landed; its draft field is spent.
	h.drafts.ClearCommentField(c.Request.Context(), quotationID)

	c.JSON(http.StatusCreated, response.FromComment(created, ""))
}

func (h *CommentHandler) AddReply(c *gin.Context) {
	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommentPayload.HTTPStatus, errInvalidCommentPayload.ToHTTPError())
		return
	}

	commentID, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		c.JSON(errInvalidCommentID.HTTPStatus, errInvalidCommentID.ToHTTPError())
		return
	}

	quotationID := c.Param("id")
	created, err := h.comments.AddReply(c.Request.Context(), quotationID, commentID, payload.ToActor(), payload.Text)
	if err != nil {
		appErr := mapCommentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.drafts.ClearReplyField(c.Request.Context(), quotationID, commentID)

	c.JSON(http.StatusCreated, response.FromReply(created))
}

// GetDraft returns the saved draft for a quotation, empty when none exists.
func (h *CommentHandler) GetDraft(c *gin.Context) {
	draft := h.drafts.Load(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, draft)
}

// SaveDraft records the in-progress comment/reply bodies. Saves are
// debounced server-side; a 202 does not promise durability.
func (h *CommentHandler) SaveDraft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommentPayload.HTTPStatus, errInvalidCommentPayload.ToHTTPError())
		return
	}
	h.drafts.Save(c.Request.Context(), c.Param("id"), interfaces.CommentDraft{
		Comment: payload.Comment,
		Replies: payload.Replies,
	})
	c.Status(http.StatusAccepted)
}

func mapCommentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID), errors.Is(err, usecase.ErrEmptyCommentText):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommentNotAllowed), errors.Is(err, usecase.ErrReplyNotAllowed):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED_ROLE", "Role not allowed for this operation", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommentNotFound):
		return pkg.NewDomainErrorSimple("COMMENT_NOT_FOUND", "Comment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrTransientFailure):
		return pkg.NewDomainErrorSimple("TRANSIENT_BACKEND_FAILURE", "Failed to save, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
