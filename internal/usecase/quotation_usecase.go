package usecase

import (
	"context"
	"errors"
	"strings"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrInvalidPage        = errors.New("invalid page or limit")
	ErrBlankClient        = errors.New("client name must not be blank")
	ErrInvalidAmount      = errors.New("amount must be positive")
)

const (
	DefaultPageSize = 8
	maxPageSize     = 100
)

// QuotationPage is a listing page plus the pagination echo the API returns.
type QuotationPage struct {
	Items        []entities.Quotation
	TotalItems   int
	TotalPages   int
	CurrentPage  int
	ItemsPerPage int
}

// IQuotationUseCase exposes quotation read and field-edit operations.
//
// Status changes are deliberately absent: they route through the status
// workflow, which re-validates the permission policy on every write.

type IQuotationUseCase interface {
	List(ctx context.Context, filter interfaces.ListFilter, page, limit int) (QuotationPage, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	UpdateDetails(ctx context.Context, id string, patch DetailsPatch, actor *entities.Actor) (entities.Quotation, error)
}

// DetailsPatch is the subset of quotation fields editable outside the status
// workflow.
type DetailsPatch struct {
	Client          *string
	Amount          *float64
	Description     *string
	RejectionReason *string
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo}
}

func (u *QuotationUseCase) List(ctx context.Context, filter interfaces.ListFilter, page, limit int) (QuotationPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > maxPageSize {
		return QuotationPage{}, ErrInvalidPage
	}

	filter.Search = strings.TrimSpace(filter.Search)
	filter.Status = strings.TrimSpace(filter.Status)

	res, err := u.repo.List(ctx, filter, page, limit)
	if err != nil {
		return QuotationPage{}, err
	}
	return QuotationPage{
		Items:        res.Items,
		TotalItems:   res.TotalItems,
		TotalPages:   res.TotalPages,
		CurrentPage:  page,
		ItemsPerPage: limit,
	}, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) UpdateDetails(ctx context.Context, id string, patch DetailsPatch, actor *entities.Actor) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if patch.Client != nil && strings.TrimSpace(*patch.Client) == "" {
		return entities.Quotation{}, ErrBlankClient
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return entities.Quotation{}, ErrInvalidAmount
	}

	updated, err := u.repo.Update(ctx, id, interfaces.QuotationPatch{
		Client:          patch.Client,
		Amount:          patch.Amount,
		Description:     patch.Description,
		RejectionReason: patch.RejectionReason,
	}, actor)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}
