// Package gateway holds the PaySuite hosted-payments client.
// Documentation: https://paysuite.tech/docs
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
)

// Config is parsed by envconfig under the PAYSUITE prefix.
type Config struct {
	BaseURL     string `split_words:"true" default:"https://paysuite.tech/api/v1"`
	Token       string `split_words:"true" required:"true"`
	ReturnURL   string `split_words:"true"`
	CallbackURL string `split_words:"true"`
	Timeout     int    `default:"30"`
}

// PaymentRequest is one order to initiate at the gateway.
type PaymentRequest struct {
	Amount      float64
	Reference   string
	Description string
	Method      string // mpesa | emola | credit_card
	Mobile      string
	Email       string
}

// PaymentIntent is the normalized successful result: a hosted checkout URL
// the shopper completes the payment on.
type PaymentIntent struct {
	ID          string
	Reference   string
	Status      string
	CheckoutURL string
}

// Client initiates payments. The funnel engine consumes this interface;
// tests substitute a fake.
type Client interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error)
}

type paySuiteClient struct {
	cfg  Config
	http *http.Client
}

func NewPaySuiteClient(cfg Config) Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &paySuiteClient{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type paySuitePayload struct {
	Amount      string `json:"amount"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
	ReturnURL   string `json:"return_url,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
	Method      string `json:"method"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
}

type paySuiteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID          string `json:"id"`
		Reference   string `json:"reference"`
		Status      string `json:"status"`
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

// InitiatePayment posts the order to the hosted-payments endpoint. Every
// failure, including network errors and responses without a checkout URL,
// comes back as a gateway error for the shopper to retry; there is no
// synthetic success path. The client never retries on its own.
func (c *paySuiteClient) InitiatePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error) {
	payload := paySuitePayload{
		Amount:      fmt.Sprintf("%.2f", req.Amount),
		Reference:   req.Reference,
		Description: req.Description,
		ReturnURL:   c.cfg.ReturnURL,
		CallbackURL: c.cfg.CallbackURL,
		Method:      req.Method,
		Mobile:      strings.ReplaceAll(req.Mobile, " ", ""),
		Email:       req.Email,
	}
	if payload.Description == "" {
		payload.Description = "Ref " + req.Reference
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errx.Gateway(err, "")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, errx.Gateway(err, "")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	log.Debug().Str("reference", req.Reference).Str("method", req.Method).Msg("iniciando pagamento PaySuite")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			// Caller went away; abandon the attempt quietly.
			return nil, ctx.Err()
		}
		log.Error().Err(err).Str("reference", req.Reference).Msg("PaySuite network error")
		return nil, errx.Gateway(err, "falha de conexão com o gateway de pagamento")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.Gateway(err, "")
	}

	var result paySuiteResponse
	if err := json.Unmarshal(raw, &result); err != nil && resp.StatusCode < 300 {
		return nil, errx.Gateway(err, "")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := result.Message
		if message == "" {
			message = fmt.Sprintf("erro da API do gateway (%d)", resp.StatusCode)
		}
		return nil, errx.Gateway(nil, message)
	}

	if result.Status != "success" || result.Data.CheckoutURL == "" {
		return nil, errx.Gateway(nil, result.Message)
	}

	return &PaymentIntent{
		ID:          result.Data.ID,
		Reference:   result.Data.Reference,
		Status:      result.Data.Status,
		CheckoutURL: result.Data.CheckoutURL,
	}, nil
}

const referenceDigits = "0123456789"

// NewReference generates a collision-resistant payment reference. The
// gateway only accepts alphanumeric references, so no separators.
func NewReference() string {
	var suffix [4]byte
	for i := range suffix {
		suffix[i] = referenceDigits[rand.IntN(len(referenceDigits))]
	}
	return fmt.Sprintf("ORD%d%s", time.Now().UnixMilli(), suffix[:])
}
