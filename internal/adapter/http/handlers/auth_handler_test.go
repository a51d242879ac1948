package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pactle_quotations/internal/adapter/http/handlers/mocks"
	"pactle_quotations/internal/domain/entities"
	"pactle_quotations/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(uc *mocks.MockIAuthUseCase) *gin.Engine {
	h := NewAuthHandler(uc)
	r := gin.New()
	r.POST("/v1/auth/signup", h.SignUp)
	r.POST("/v1/auth/signin", h.SignIn)
	r.POST("/v1/auth/signout", h.SignOut)
	r.POST("/v1/auth/forgot-password", h.ForgotPassword)
	r.POST("/v1/auth/switch-role", h.SwitchRole)
	r.GET("/v1/auth/me", h.Me)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SignUp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newAuthRouter(mocks.NewMockIAuthUseCase(ctrl))

		w := postJSON(t, r, "/v1/auth/signup", `{"name":"Jane","email":"not-an-email","password":"password123"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SignUp(gomock.Any(), "Jane", "jane@pactle.test", "password123", entities.RoleManager).Return(
			entities.User{ID: "u-1", Name: "Jane", Email: "jane@pactle.test", Role: entities.RoleManager}, "tok-1", nil)

		w := postJSON(t, r, "/v1/auth/signup",
			`{"name":"Jane","email":"jane@pactle.test","password":"password123","role":"manager"}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			User  struct{ Role string }
			Token string
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.User.Role != "manager" || body.Token != "tok-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SignUp(gomock.Any(), "Jane", "jane@pactle.test", "password123", entities.RoleManager).Return(
			entities.User{}, "", usecase.ErrUserAlreadyExists)

		w := postJSON(t, r, "/v1/auth/signup",
			`{"name":"Jane","email":"jane@pactle.test","password":"password123","role":"manager"}`, "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SignIn(gomock.Any(), "jane@pactle.test", "wrong").Return(
			entities.User{}, "", usecase.ErrInvalidCredentials)

		w := postJSON(t, r, "/v1/auth/signin", `{"email":"jane@pactle.test","password":"wrong"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body struct{ Code string }
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected code: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SignIn(gomock.Any(), "jane@pactle.test", "password123").Return(
			entities.User{ID: "u-1", Email: "jane@pactle.test", Role: entities.RoleManager}, "tok-1", nil)

		w := postJSON(t, r, "/v1/auth/signin", `{"email":"jane@pactle.test","password":"password123"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_TokenGatedEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newAuthRouter(mocks.NewMockIAuthUseCase(ctrl))

		w := postJSON(t, r, "/v1/auth/signout", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("signout success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SignOut(gomock.Any(), "tok-1").Return(nil)

		w := postJSON(t, r, "/v1/auth/signout", "", "tok-1")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("switch role success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().SwitchRole(gomock.Any(), "tok-1", entities.RoleViewer).Return(
			entities.User{ID: "u-1", Role: entities.RoleViewer}, nil)

		w := postJSON(t, r, "/v1/auth/switch-role", `{"role":"viewer"}`, "tok-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct{ Role string }
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Role != "viewer" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("expired session on me", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newAuthRouter(uc)

		uc.EXPECT().CurrentUser(gomock.Any(), "stale").Return(entities.User{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	r := newAuthRouter(uc)

	uc.EXPECT().ForgotPassword(gomock.Any(), "jane@pactle.test").Return(nil)

	w := postJSON(t, r, "/v1/auth/forgot-password", `{"email":"jane@pactle.test"}`, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
