package entities

import "time"

// FunnelStage is the shopper-visible state of one checkout session.
type FunnelStage string

const (
	StageForm       FunnelStage = "form"
	StageProcessing FunnelStage = "processing"
	StageIframe     FunnelStage = "iframe"
	StageUpsell     FunnelStage = "upsell"
	StageSuccess    FunnelStage = "success"
	StageError      FunnelStage = "error"
)

// Payment methods accepted by the gateway.
const (
	MethodMpesa      = "mpesa"
	MethodEmola      = "emola"
	MethodCreditCard = "credit_card"
)

// Customer carries the shopper contact fields captured on the form.
type Customer struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Whatsapp     string `json:"whatsapp"`
	PaymentPhone string `json:"payment_phone,omitempty"`
}

// CheckoutSession is the ephemeral state of one active checkout flow. It
// lives in the session store with a TTL and is never written to the
// database; closing the checkout destroys it.
type CheckoutSession struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Stage         FunnelStage `json:"stage"`
	SelectedBumps []string    `json:"selected_bumps"`
	CouponCode    string      `json:"coupon_code,omitempty"`
	Customer      Customer    `json:"customer"`
	PaymentMethod string      `json:"payment_method,omitempty"`

	// Recomputed from the product on every mutation; display only. The
	// amount actually charged is recomputed again at submission time.
	Total float64 `json:"total"`

	Reference  string `json:"reference,omitempty"`
	PaymentURL string `json:"payment_url,omitempty"`

	// Set by the gateway callback when it lands before the shopper
	// self-confirms.
	PaymentReceived bool `json:"payment_received"`

	// Internal upsell being displayed while Stage == upsell.
	UpsellProductID string `json:"upsell_product_id,omitempty"`

	LastError string `json:"last_error,omitempty"`
}

// HasBump reports whether the bump id is currently selected.
func (s *CheckoutSession) HasBump(id string) bool {
	for _, b := range s.SelectedBumps {
		if b == id {
			return true
		}
	}
	return false
}
