package webhook

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
)

type payoutProjection struct {
	ID                string   `json:"id"`
	NumericID         int64    `json:"numericId"`
	Status            string   `json:"status"`
	Amount            float64  `json:"amount"`
	AmountUsdt        float64  `json:"amountUsdt"`
	Wallet            string   `json:"wallet"`
	Bank              string   `json:"bank"`
	ExternalReference string   `json:"externalReference,omitempty"`
	ProofFiles        []string `json:"proofFiles,omitempty"`
	DisputeFiles      []string `json:"disputeFiles,omitempty"`
	DisputeMessage    string   `json:"disputeMessage,omitempty"`
	CancelReason      string   `json:"cancelReason,omitempty"`
	CancelReasonCode  string   `json:"cancelReasonCode,omitempty"`
	Metadata          string   `json:"metadata,omitempty"`
}

type webhookBody struct {
	Event  string           `json:"event"`
	Payout payoutProjection `json:"payout"`
}

type Sender struct {
	client *http.Client
}

func NewSender() *Sender {
	return &Sender{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Send - POST на merchantWebhookUrl выплаты. Если у мерчанта настроены
// API ключи, тело подписывается HMAC-SHA256 приватным ключом:
// x-api-key = публичный ключ, x-api-token = hex подписи.
// Ошибки логируются и глотаются, доставка best-effort.
func (s *Sender) Send(payout *domain.Payout, merchant *domain.Merchant, event string) {
	if payout.MerchantWebhookURL == "" {
		return
	}

	body, err := json.Marshal(webhookBody{
		Event: event,
		Payout: payoutProjection{
			ID:                payout.ID,
			NumericID:         payout.NumericID,
			Status:            string(payout.Status),
			Amount:            payout.Amount,
			AmountUsdt:        payout.AmountUsdt,
			Wallet:            payout.Wallet,
			Bank:              payout.Bank,
			ExternalReference: payout.ExternalReference,
			ProofFiles:        payout.ProofFiles,
			DisputeFiles:      payout.DisputeFiles,
			DisputeMessage:    payout.DisputeMessage,
			CancelReason:      payout.CancelReason,
			CancelReasonCode:  payout.CancelReasonCode,
			Metadata:          payout.MerchantMetadata,
		},
	})
	if err != nil {
		slog.Error("failed to marshal webhook body", "payout_id", payout.ID, "error", err.Error())
		return
	}

	req, err := http.NewRequest(http.MethodPost, payout.MerchantWebhookURL, bytes.NewBuffer(body))
	if err != nil {
		slog.Error("failed to create webhook request", "payout_id", payout.ID, "error", err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")

	if merchant != nil && merchant.ApiKeyPublic != "" && merchant.ApiKeyPrivate != "" {
		mac := hmac.New(sha256.New, []byte(merchant.ApiKeyPrivate))
		mac.Write(body)
		req.Header.Set("x-api-key", merchant.ApiKeyPublic)
		req.Header.Set("x-api-token", hex.EncodeToString(mac.Sum(nil)))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("webhook request failed", "payout_id", payout.ID, "url", payout.MerchantWebhookURL, "error", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("webhook returned non-2xx", "payout_id", payout.ID, "status", resp.Status)
	}
}
