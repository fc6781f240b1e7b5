package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"seguros_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoPayoutGateway disburses approved claims through Mercado Pago.
//
// The claim transaction id is sent as external_reference so provider webhooks
// and reconciliation reports can be mapped back to the claim. Mock mode
// (PAYMENT_GATEWAY_MOCK) fabricates an approved response for local runs.

type MercadoPagoPayoutGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPayoutGateway = (*MercadoPagoPayoutGateway)(nil)

func NewMercadoPagoPayoutGateway(accessToken string) (*MercadoPagoPayoutGateway, error) {
	if isPayoutGatewayMockEnabled() {
		log.Printf("[payout][gateway] mock mode enabled")
		return &MercadoPagoPayoutGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payout][gateway] Mercado Pago client initialized")

	return &MercadoPagoPayoutGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoPayoutGateway) CreatePayout(ctx context.Context, req interfaces.PayoutRequest) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": req.TransactionID,
			"transaction_amount": req.Amount,
			"date_created":       now,
			"date_approved":      now,
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return "", "", nil, err
		}
		log.Printf("[payout][gateway] mock create success transaction_id=%s provider_payout_id=%s", req.TransactionID, id)
		return id, "approved", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payout][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payout][gateway] create start transaction_id=%s amount=%.2f", req.TransactionID, req.Amount)

	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Claim payout %s", req.TransactionID)
	}

	mpReq := payment.Request{
		TransactionAmount: req.Amount,
		Description:       description,
		ExternalReference: req.TransactionID,
		PaymentMethodID:   getenvDefault("MERCADOPAGO_PAYOUT_METHOD", "pix"),
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYEE_EMAIL")); email != "" {
		mpReq.Payer = &payment.PayerRequest{Email: email}
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payout][gateway] sdk create failed transaction_id=%s err=%v", req.TransactionID, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payout][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payout][gateway] create success transaction_id=%s provider_payout_id=%d provider_status=%s", req.TransactionID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isPayoutGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
