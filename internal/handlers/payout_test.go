package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/payout"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// stubPayoutService overrides the one method under test; the embedded
// interface covers the rest.
type stubPayoutService struct {
	payout.Service
	refreshPayout *models.Payout
	refreshErr    error
}

func (s *stubPayoutService) RefreshPaymentInfo(ctx context.Context, payoutID string) (*models.Payout, error) {
	return s.refreshPayout, s.refreshErr
}

func TestPayoutHandler_RefreshPaymentInfo_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing payout", payout.ErrPayoutNotFound, fiber.StatusNotFound},
		{"missing order", repositories.ErrOrderNotFound, fiber.StatusNotFound},
		{"missing seller order", repositories.ErrSellerOrderNotFound, fiber.StatusNotFound},
		{"missing payment record", payout.ErrPaymentMissing, fiber.StatusNotFound},
		{"storage failure", errors.New("connection reset"), fiber.StatusInternalServerError},
		{"success", nil, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubPayoutService{refreshErr: tt.serviceErr}
			if tt.serviceErr == nil {
				svc.refreshPayout = &models.Payout{PayoutID: "PAY-240315-0042"}
			}
			h := NewPayoutHandler(svc)

			app := fiber.New()
			app.Post("/payouts/:payoutId/payment-info", h.RefreshPaymentInfo)

			req := httptest.NewRequest("POST", "/payouts/PAY-240315-0042/payment-info", nil)
			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
