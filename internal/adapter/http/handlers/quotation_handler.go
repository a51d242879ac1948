package handlers

import (
	"errors"
	"net/http"

	request "pactle_quotations/internal/adapter/http/dto/request"
	response "pactle_quotations/internal/adapter/http/dto/response"
	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/domain/permissions"
	"pactle_quotations/internal/usecase"
	"pactle_quotations/internal/usecase/interfaces"
	"pactle_quotations/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errActorRequired           = pkg.NewDomainErrorSimple("ACTOR_REQUIRED", "Status changes require an actor", http.StatusBadRequest)
)

// QuotationHandler handles quotation reads, field edits and status
// transitions. Status-changing PATCHes route through the workflow so the
// permission policy is enforced on every write path, not just in the UI.

type QuotationHandler struct {
	usecase  usecase.IQuotationUseCase
	workflow usecase.IStatusWorkflowUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, wf usecase.IStatusWorkflowUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc, workflow: wf}
}

// GetQuotations lists quotations with search/status filters and pagination.
// viewer_role, when present, filters threaded replies per the visibility
// policy before the payload leaves the service.
func (h *QuotationHandler) GetQuotations(c *gin.Context) {
	var q request.ListQuotationsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), interfaces.ListFilter{
		Search: q.Search,
		Status: q.Status,
	}, q.Page, q.Limit)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotationPage(page, viewerRole(c)))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q, viewerRole(c)))
}

// GetQuotationActions echoes the capability set for a role against the
// quotation's current status.
func (h *QuotationHandler) GetQuotationActions(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	role := entities.Role(c.Query("role"))
	c.JSON(http.StatusOK, response.FromActions(permissions.AvailableActions(role, q.Status)))
}

// UpdateQuotation applies a partial update. A present status field makes the
// request a workflow transition; other fields are plain edits.
func (h *QuotationHandler) UpdateQuotation(c *gin.Context) {
	var payload request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	id := c.Param("id")

	if payload.IsTransition() {
		actor := payload.Actor.ToActor()
		if actor == nil {
			c.JSON(errActorRequired.HTTPStatus, errActorRequired.ToHTTPError())
			return
		}
		updated, err := h.workflow.Transition(
			c.Request.Context(),
			id,
			entities.QuotationStatus(*payload.Status),
			*actor,
			payload.TransitionReason(),
		)
		if err != nil {
			appErr := mapQuotationError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromQuotation(updated, viewerRole(c)))
		return
	}

	updated, err := h.usecase.UpdateDetails(c.Request.Context(), id, usecase.DetailsPatch{
		Client:          payload.Client,
		Amount:          payload.Amount,
		Description:     payload.Description,
		RejectionReason: payload.RejectionReason,
	}, payload.Actor.ToActor())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(updated, viewerRole(c)))
}

// viewerRole resolves the optional viewer_role query parameter used by the
// reply visibility filter.
func viewerRole(c *gin.Context) entities.Role {
	return entities.Role(c.Query("viewer_role"))
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrBlankClient),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorizedRole):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED_ROLE", "Role not allowed for this transition", http.StatusForbidden)
	case errors.Is(err, usecase.ErrSameStatus):
		return pkg.NewDomainErrorSimple("SAME_STATUS", "Quotation already has the requested status", http.StatusConflict)
	case errors.Is(err, interfaces.ErrTransientFailure):
		return pkg.NewDomainErrorSimple("TRANSIENT_BACKEND_FAILURE", "Failed to update quotation, please retry", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
