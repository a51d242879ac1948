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

func TestStatusWorkflowUseCase_Transition(t *testing.T) {
	manager := entities.Actor{Name: "Jane Smith", Role: entities.RoleManager}

	t.Run("invalid id", func(t *testing.T) {
		wf := NewStatusWorkflowUseCase(nil)
		_, err := wf.Transition(context.Background(), "   ", entities.QuotationStatusApproved, manager, "")
		if !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		wf := NewStatusWorkflowUseCase(nil)
		_, err := wf.Transition(context.Background(), "Q-101", entities.QuotationStatus("Archived"), manager, "")
		if !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("repo get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(entities.Quotation{}, errors.New("db"))

		_, err := wf.Transition(context.Background(), "Q-101", entities.QuotationStatusApproved, manager, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-999").Return(entities.Quotation{}, nil)

		_, err := wf.Transition(context.Background(), "Q-999", entities.QuotationStatusApproved, manager, "")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("non manager roles denied", func(t *testing.T) {
		for _, role := range []entities.Role{entities.RoleSalesRep, entities.RoleViewer} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			wf := NewStatusWorkflowUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(
				entities.Quotation{ID: "Q-101", Status: entities.QuotationStatusPending}, nil)

			_, err := wf.Transition(context.Background(), "Q-101", entities.QuotationStatusApproved,
				entities.Actor{Name: "John Doe", Role: role}, "")
			if !errors.Is(err, ErrUnauthorizedRole) {
				t.Fatalf("role %s: expected ErrUnauthorizedRole, got %v", role, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("approving an approved quotation is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-102").Return(
			entities.Quotation{ID: "Q-102", Status: entities.QuotationStatusApproved}, nil)

		_, err := wf.Transition(context.Background(), "Q-102", entities.QuotationStatusApproved, manager, "")
		if !errors.Is(err, ErrUnauthorizedRole) {
			t.Fatalf("expected ErrUnauthorizedRole, got %v", err)
		}
	})

	t.Run("same pending status conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(
			entities.Quotation{ID: "Q-101", Status: entities.QuotationStatusPending}, nil)

		_, err := wf.Transition(context.Background(), "Q-101", entities.QuotationStatusPending, manager, "")
		if !errors.Is(err, ErrSameStatus) {
			t.Fatalf("expected ErrSameStatus, got %v", err)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(
			entities.Quotation{ID: "Q-101", Status: entities.QuotationStatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), "Q-101", gomock.Any(), &manager).DoAndReturn(
			func(_ context.Context, id string, patch interfaces.QuotationPatch, _ *entities.Actor) (entities.Quotation, error) {
				if patch.Status == nil || *patch.Status != entities.QuotationStatusApproved {
					t.Fatalf("unexpected status patch: %+v", patch)
				}
				if patch.Reason != nil || patch.RejectionReason != nil {
					t.Fatalf("approve without reason must not carry reason fields: %+v", patch)
				}
				return entities.Quotation{ID: id, Status: entities.QuotationStatusApproved}, nil
			})

		updated, err := wf.Transition(context.Background(), " Q-101 ", entities.QuotationStatusApproved, manager, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.QuotationStatusApproved {
			t.Fatalf("expected Approved, got %s", updated.Status)
		}
	})

	t.Run("reject carries reason into rejectionReason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-101").Return(
			entities.Quotation{ID: "Q-101", Status: entities.QuotationStatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), "Q-101", gomock.Any(), &manager).DoAndReturn(
			func(_ context.Context, id string, patch interfaces.QuotationPatch, _ *entities.Actor) (entities.Quotation, error) {
				if patch.Reason == nil || *patch.Reason != "Too expensive" {
					t.Fatalf("expected audit reason, got %+v", patch)
				}
				if patch.RejectionReason == nil || *patch.RejectionReason != "Too expensive" {
					t.Fatalf("expected rejectionReason, got %+v", patch)
				}
				return entities.Quotation{ID: id, Status: entities.QuotationStatusRejected, RejectionReason: *patch.RejectionReason}, nil
			})

		updated, err := wf.Transition(context.Background(), "Q-101", entities.QuotationStatusRejected, manager, "Too expensive")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.RejectionReason != "Too expensive" {
			t.Fatalf("expected rejection reason, got %q", updated.RejectionReason)
		}
	})

	t.Run("approve after reject keeps reason out of patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-103").Return(
			entities.Quotation{ID: "Q-103", Status: entities.QuotationStatusRejected, RejectionReason: "Pricing not competitive"}, nil)
		repo.EXPECT().Update(gomock.Any(), "Q-103", gomock.Any(), &manager).DoAndReturn(
			func(_ context.Context, id string, patch interfaces.QuotationPatch, _ *entities.Actor) (entities.Quotation, error) {
				if patch.RejectionReason != nil {
					t.Fatalf("approval must not touch rejectionReason: %+v", patch)
				}
				return entities.Quotation{ID: id, Status: entities.QuotationStatusApproved, RejectionReason: "Pricing not competitive"}, nil
			})

		updated, err := wf.Transition(context.Background(), "Q-103", entities.QuotationStatusApproved, manager, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.RejectionReason != "Pricing not competitive" {
			t.Fatalf("prior rejection reason lost: %q", updated.RejectionReason)
		}
	})

	t.Run("repo update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		wf := NewStatusWorkflowUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "Q-104").Return(
			entities.Quotation{ID: "Q-104", Status: entities.QuotationStatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), "Q-104", gomock.Any(), &manager).Return(
			entities.Quotation{}, interfaces.ErrTransientFailure)

		_, err := wf.Transition(context.Background(), "Q-104", entities.QuotationStatusApproved, manager, "")
		if !errors.Is(err, interfaces.ErrTransientFailure) {
			t.Fatalf("expected ErrTransientFailure, got %v", err)
		}
	})
}
