package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wrenchgo_payments/internal/adapter/http/handlers/mocks"
	"wrenchgo_payments/internal/domain/entities"
	"wrenchgo_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func contractRouter(h *ContractHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contracts/:contract_id/authorize", h.AuthorizeContract)
	r.POST("/contracts/:contract_id/capture", h.CaptureContract)
	return r
}

func TestContractHandler_AuthorizeContract(t *testing.T) {
	t.Run("missing user identity", func(t *testing.T) {
		r := contractRouter(NewContractHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/authorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("empty body uses the stored hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().AuthorizeContract(gomock.Any(), "con-1", "", "user-1").
			Return(usecase.AuthorizeResult{Authorized: true}, nil)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/authorize", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["authorized"] != true || body["already_authorized"] != false {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("body carries the hold token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().AuthorizeContract(gomock.Any(), "con-1", "pi_1", "user-1").
			Return(usecase.AuthorizeResult{Authorized: true}, nil)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/authorize",
			strings.NewReader(`{"payment_intent_id": "pi_1"}`))
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r := contractRouter(NewContractHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/authorize", strings.NewReader(`{"payment`))
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount mismatch maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().AuthorizeContract(gomock.Any(), "con-1", "", "user-1").
			Return(usecase.AuthorizeResult{}, usecase.ErrHoldAmountMismatch)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/authorize", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "AMOUNT_MISMATCH") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().AuthorizeContract(gomock.Any(), "con-x", "", "user-1").
			Return(usecase.AuthorizeResult{}, usecase.ErrContractNotFound)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-x/authorize", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestContractHandler_CaptureContract(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().CaptureContract(gomock.Any(), "con-1", "user-1").
			Return(usecase.CaptureResult{Captured: true, HoldStatus: entities.HoldStatusSucceeded}, nil)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/capture", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["captured"] != true || body["hold_status"] != "succeeded" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("replayed capture reports already captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().CaptureContract(gomock.Any(), "con-1", "user-1").
			Return(usecase.CaptureResult{AlreadyCaptured: true}, nil)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/capture", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"already_captured":true`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("job not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		uc.EXPECT().CaptureContract(gomock.Any(), "con-1", "user-1").
			Return(usecase.CaptureResult{}, usecase.ErrJobNotReadyForCapture)

		r := contractRouter(NewContractHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/contracts/con-1/capture", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "JOB_NOT_COMPLETED") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
