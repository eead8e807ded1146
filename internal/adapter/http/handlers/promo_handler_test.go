package handlers

import (
	"encoding/json"
	"errors"
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

func promoRouter(h *PromoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/promo-credits", h.GetCreditsBalance)
	r.POST("/promotions/validate", h.ValidatePromotionCode)
	return r
}

func TestPromoHandler_GetCreditsBalance(t *testing.T) {
	t.Run("missing user identity", func(t *testing.T) {
		r := promoRouter(NewPromoHandler(nil))

		req := httptest.NewRequest(http.MethodGet, "/promo-credits", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().CreditsBalance(gomock.Any(), "user-1").Return(usecase.CreditsBalance{
			FeelessCredits:  1,
			Feeless5Credits: 5,
			TotalCredits:    6,
		}, nil)

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/promo-credits", nil)
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
		if body["feeless_credits"].(float64) != 1 || body["total_credits"].(float64) != 6 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("fee query adds a discount preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().CreditsBalance(gomock.Any(), "user-1").
			Return(usecase.CreditsBalance{FeelessCredits: 1, TotalCredits: 1}, nil)
		uc.EXPECT().PreviewDiscount(gomock.Any(), "user-1", entities.Cents(1500)).
			Return(entities.PromoOutcome{
				Applied:       true,
				CreditType:    entities.PromoCreditFeeless,
				DiscountCents: 1500,
				FeeAfterCents: 0,
			}, nil)

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/promo-credits?platform_fee_cents=1500", nil)
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
		preview, ok := body["preview"].(map[string]any)
		if !ok {
			t.Fatalf("preview missing from body: %v", body)
		}
		if preview["discount_cents"].(float64) != 1500 || preview["fee_after_cents"].(float64) != 0 {
			t.Fatalf("unexpected preview: %v", preview)
		}
	})

	t.Run("malformed fee query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().CreditsBalance(gomock.Any(), "user-1").
			Return(usecase.CreditsBalance{}, nil)

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/promo-credits?platform_fee_cents=abc", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().CreditsBalance(gomock.Any(), "user-1").
			Return(usecase.CreditsBalance{}, errors.New("dynamo timeout"))

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodGet, "/promo-credits", nil)
		req.Header.Set(userIDHeader, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPromoHandler_ValidatePromotionCode(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r := promoRouter(NewPromoHandler(nil))

		req := httptest.NewRequest(http.MethodPost, "/promotions/validate", strings.NewReader(`{"code": `))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("valid code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().ValidatePromotionCode(gomock.Any(), "SPRING20", entities.Cents(10000)).
			Return(usecase.PromotionValidation{Valid: true, Code: "SPRING20", DiscountCents: 2000}, nil)

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/promotions/validate",
			strings.NewReader(`{"code": "SPRING20", "quote_amount_cents": 10000}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["valid"] != true || body["discount_cents"].(float64) != 2000 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("expired code is a 200 with a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPromoUseCase(ctrl)
		uc.EXPECT().ValidatePromotionCode(gomock.Any(), "OLD", entities.Cents(10000)).
			Return(usecase.PromotionValidation{Valid: false, Reason: "Promotion has expired"}, nil)

		r := promoRouter(NewPromoHandler(uc))
		req := httptest.NewRequest(http.MethodPost, "/promotions/validate",
			strings.NewReader(`{"code": "OLD", "quote_amount_cents": 10000}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Promotion has expired") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
