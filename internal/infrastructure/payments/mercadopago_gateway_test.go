package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"seguros_xpto/internal/usecase/interfaces"
)

func TestNewMercadoPagoPayoutGateway(t *testing.T) {
	t.Run("missing token without mock mode fails", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		if _, err := NewMercadoPagoPayoutGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("payment gateway mock flag enables mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoPayoutGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id, status, raw, err := g.CreatePayout(context.Background(), interfaces.PayoutRequest{
			TransactionID: "tx-1",
			Amount:        1200.50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("expected approved mock payout, got id=%q status=%q", id, status)
		}

		var resp map[string]any
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("raw response must be json: %v", err)
		}
		if resp["external_reference"] != "tx-1" {
			t.Fatalf("expected external_reference tx-1, got %v", resp["external_reference"])
		}
	})
}
