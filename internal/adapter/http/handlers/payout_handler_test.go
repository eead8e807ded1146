package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wrenchgo_payments/internal/adapter/http/handlers/mocks"
	"wrenchgo_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func payoutRouter(h *PayoutHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/payouts/run", h.RunWeeklyPayouts)
	return r
}

func TestPayoutHandler_RunWeeklyPayouts(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		t.Setenv("CRON_SECRET", "topsecret")
		r := payoutRouter(NewPayoutHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/payouts/run", nil)
		req.Header.Set(cronSecretHeader, "guess")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing secret header", func(t *testing.T) {
		t.Setenv("CRON_SECRET", "topsecret")
		r := payoutRouter(NewPayoutHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/payouts/run", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unset secret rejects everything", func(t *testing.T) {
		t.Setenv("CRON_SECRET", "")
		r := payoutRouter(NewPayoutHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/payouts/run", nil)
		req.Header.Set(cronSecretHeader, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("an empty secret must never authorize, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		t.Setenv("CRON_SECRET", "topsecret")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RunWeeklyPayouts(gomock.Any(), gomock.Any()).Return(usecase.PayoutRunResult{
			EntriesDue:       3,
			TransfersCreated: 2,
			TransferIDs:      []string{"tr_1", "tr_2"},
			FailedMechanics:  []string{"mech-3"},
		}, nil)

		r := payoutRouter(NewPayoutHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/payouts/run", nil)
		req.Header.Set(cronSecretHeader, "topsecret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["entries_due"].(float64) != 3 || body["transfers_created"].(float64) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
		if !strings.Contains(w.Body.String(), "mech-3") {
			t.Fatalf("failed mechanics missing from body: %s", w.Body.String())
		}
	})

	t.Run("run failure", func(t *testing.T) {
		t.Setenv("CRON_SECRET", "topsecret")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		uc.EXPECT().RunWeeklyPayouts(gomock.Any(), gomock.Any()).
			Return(usecase.PayoutRunResult{}, errors.New("dynamo down"))

		r := payoutRouter(NewPayoutHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/payouts/run", nil)
		req.Header.Set(cronSecretHeader, "topsecret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "PAYOUT_RUN_FAILED") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
