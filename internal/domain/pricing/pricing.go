// Package pricing computes the payable total of a checkout: the product's
// default offer price, optionally discounted by a coupon, plus every
// selected enabled order bump.
package pricing

import (
	"math"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

// Round normalizes a monetary value to the two-decimal minor-unit
// precision the gateway expects.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// BasePrice returns the price of the offer flagged as default, falling
// back to the product price for records saved before offers existed.
func BasePrice(p *entities.Product) float64 {
	if offer, ok := p.DefaultOffer(); ok {
		return offer.Price
	}
	return p.Price
}

// Total computes the amount payable for the product with the given bump
// selection and optional coupon code. Bumps that are disabled or unknown
// never count, even if selected. The result is rounded and never negative.
func Total(p *entities.Product, selectedBumps []string, couponCode string) (float64, error) {
	total := BasePrice(p)

	if couponCode != "" {
		coupon, ok := p.FindCoupon(couponCode)
		if !ok {
			return 0, errx.Validation("cupom inválido ou inativo")
		}
		total -= total * coupon.Percentage / 100
	}

	for _, id := range selectedBumps {
		bump, ok := p.FindBump(id)
		if !ok || !bump.IsEnabled {
			continue
		}
		total += bump.Price
	}

	if total < 0 {
		total = 0
	}
	return Round(total), nil
}

// ToggleBump flips the selection state of one bump id and returns the new
// selection. Toggling the same id twice restores the prior set.
func ToggleBump(selected []string, bumpID string) []string {
	for i, id := range selected {
		if id == bumpID {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, bumpID)
}

// UpsellPrice resolves the price charged when the shopper accepts an
// internal upsell: the funnel override wins over the product's own price.
func UpsellPrice(funnel *entities.FunnelConfig, upsell *entities.Product) float64 {
	if funnel != nil && funnel.UpsellPrice > 0 {
		return Round(funnel.UpsellPrice)
	}
	return Round(BasePrice(upsell))
}
