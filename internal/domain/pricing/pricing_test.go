package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

func produto() *entities.Product {
	return &entities.Product{
		ID:    "p1",
		Name:  "Curso de Marketing",
		Price: 1500,
		Offers: []entities.Offer{
			{ID: "of1", Name: "Oferta Padrão", Price: 1500, IsDefault: true},
			{ID: "of2", Name: "Promocional", Price: 990, IsDefault: false},
		},
		OrderBumps: []entities.OrderBump{
			{ID: "b1", Title: "Ebook bônus", Price: 200, IsEnabled: true},
			{ID: "b2", Title: "Mentoria", Price: 500, IsEnabled: false},
		},
		CouponsEnabled: true,
		Coupons: []entities.Coupon{
			{ID: "c1", Code: "SIMBA10", Percentage: 10, IsActive: true},
			{ID: "c2", Code: "VELHO", Percentage: 50, IsActive: false},
		},
	}
}

func TestBasePriceUsesDefaultOffer(t *testing.T) {
	p := produto()
	assert.Equal(t, 1500.0, BasePrice(p))

	p.Offers = nil
	p.Price = 750
	assert.Equal(t, 750.0, BasePrice(p))
}

func TestTotalWithBumps(t *testing.T) {
	p := produto()

	total, err := Total(p, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, total)

	total, err = Total(p, []string{"b1"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1700.0, total)
}

func TestTotalIgnoresDisabledAndUnknownBumps(t *testing.T) {
	p := produto()

	total, err := Total(p, []string{"b2", "inexistente"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, total)
}

func TestTotalAppliesCouponOnBaseOnly(t *testing.T) {
	p := produto()

	// desconto incide sobre a base, bump entra cheio
	total, err := Total(p, []string{"b1"}, "SIMBA10")
	require.NoError(t, err)
	assert.Equal(t, 1550.0, total)
}

func TestTotalRejectsInvalidCoupon(t *testing.T) {
	p := produto()

	_, err := Total(p, nil, "VELHO")
	assert.Error(t, err)

	_, err = Total(p, nil, "NAOEXISTE")
	assert.Error(t, err)

	p.CouponsEnabled = false
	_, err = Total(p, nil, "SIMBA10")
	assert.Error(t, err)
}

func TestTotalNeverNegative(t *testing.T) {
	p := produto()
	p.Offers[0].Price = -50

	total, err := Total(p, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestTotalRounding(t *testing.T) {
	p := produto()
	p.Offers[0].Price = 99.99
	p.Coupons[0].Percentage = 33.33

	total, err := Total(p, nil, "SIMBA10")
	require.NoError(t, err)
	assert.Equal(t, 66.66, total)
}

func TestToggleBumpIsItsOwnInverse(t *testing.T) {
	selected := []string{"b1"}

	selected = ToggleBump(selected, "b2")
	assert.ElementsMatch(t, []string{"b1", "b2"}, selected)

	selected = ToggleBump(selected, "b2")
	assert.Equal(t, []string{"b1"}, selected)

	selected = ToggleBump(selected, "b1")
	assert.Empty(t, selected)
}

func TestUpsellPricePrefersFunnelOverride(t *testing.T) {
	upsell := produto()

	assert.Equal(t, 300.0, UpsellPrice(&entities.FunnelConfig{UpsellPrice: 300}, upsell))
	assert.Equal(t, 1500.0, UpsellPrice(&entities.FunnelConfig{}, upsell))
	assert.Equal(t, 1500.0, UpsellPrice(nil, upsell))
}
