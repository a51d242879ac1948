package usecase

import (
	"context"
	"errors"
	"testing"

	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase/interfaces"
	mock_interfaces "pactle_quotations/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationUseCase_List(t *testing.T) {
	t.Run("defaults page and limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.ListFilter{}, 1, DefaultPageSize).Return(
			interfaces.Page{Items: []entities.Quotation{{ID: "Q-101"}}, TotalItems: 1, TotalPages: 1}, nil)

		page, err := uc.List(context.Background(), interfaces.ListFilter{}, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.CurrentPage != 1 || page.ItemsPerPage != DefaultPageSize {
			t.Fatalf("unexpected pagination echo: %+v", page)
		}
	})

	t.Run("limit above cap rejected", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.List(context.Background(), interfaces.ListFilter{}, 1, 500)
		if !errors.Is(err, ErrInvalidPage) {
			t.Fatalf("expected ErrInvalidPage, got %v", err)
		}
	})

	t.Run("trims filter values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.ListFilter{Search: "acme", Status: "Pending"}, 2, 4).Return(
			interfaces.Page{TotalItems: 0, TotalPages: 0}, nil)

		_, err := uc.List(context.Background(), interfaces.ListFilter{Search: " acme ", Status: " Pending "}, 2, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any(), 1, DefaultPageSize).Return(
			interfaces.Page{}, errors.New("db"))

		_, err := uc.List(context.Background(), interfaces.ListFilter{}, 1, 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-999").Return(entities.Quotation{}, nil)

		_, err := uc.GetByID(context.Background(), "Q-999")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(
			entities.Quotation{ID: "Q-101", Client: "Acme Corp"}, nil)

		q, err := uc.GetByID(context.Background(), " Q-101 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Client != "Acme Corp" {
			t.Fatalf("unexpected quotation: %+v", q)
		}
	})
}

func TestQuotationUseCase_UpdateDetails(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("blank client", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.UpdateDetails(context.Background(), "Q-101", DetailsPatch{Client: strPtr("   ")}, nil)
		if !errors.Is(err, ErrBlankClient) {
			t.Fatalf("expected ErrBlankClient, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewQuotationUseCase(nil)
		_, err := uc.UpdateDetails(context.Background(), "Q-101", DetailsPatch{Amount: floatPtr(0)}, nil)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "Q-999", gomock.Any(), gomock.Nil()).Return(entities.Quotation{}, nil)

		_, err := uc.UpdateDetails(context.Background(), "Q-999", DetailsPatch{Client: strPtr("Acme")}, nil)
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("success never patches status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo)
		actor := &entities.Actor{Name: "Jane Smith", Role: entities.RoleManager}

		repo.EXPECT().Update(gomock.Any(), "Q-101", gomock.Any(), actor).DoAndReturn(
			func(_ context.Context, id string, patch interfaces.QuotationPatch, _ *entities.Actor) (entities.Quotation, error) {
				if patch.Status != nil {
					t.Fatalf("details update must not carry a status: %+v", patch)
				}
				if patch.Client == nil || *patch.Client != "Acme Corp" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Quotation{ID: id, Client: *patch.Client}, nil
			})

		q, err := uc.UpdateDetails(context.Background(), "Q-101", DetailsPatch{Client: strPtr("Acme Corp"), Amount: floatPtr(100)}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Client != "Acme Corp" {
			t.Fatalf("unexpected quotation: %+v", q)
		}
	})
}
