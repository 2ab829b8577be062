package usecases

import (
	"context"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/gateway"
)

type fakeProductRepo struct {
	products map[string]*entities.Product
	// failures força um erro para ids específicos em FindByIDPublic
	failures map[string]error
}

func newFakeProductRepo(products ...*entities.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products: make(map[string]*entities.Product),
		failures: make(map[string]error),
	}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) GetProducts(_ context.Context, ownerID string, _, _ int, _ string) ([]entities.Product, int64, error) {
	var out []entities.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, ownerID, id string) (*entities.Product, error) {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return nil, errx.NotFound("produto não encontrado")
	}
	return p, nil
}

func (r *fakeProductRepo) FindByIDPublic(_ context.Context, id string) (*entities.Product, error) {
	if err, found := r.failures[id]; found {
		return nil, err
	}
	p, ok := r.products[id]
	if !ok {
		return nil, errx.NotFound("produto não encontrado")
	}
	return p, nil
}

func (r *fakeProductRepo) Save(_ context.Context, product *entities.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, ownerID, id string) error {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return errx.NotFound("produto não encontrado")
	}
	delete(r.products, id)
	return nil
}

// fakeGateway records requests and answers with the configured response.
type fakeGateway struct {
	requests []gateway.PaymentRequest
	intent   *gateway.PaymentIntent
	err      error
}

func (g *fakeGateway) InitiatePayment(_ context.Context, req gateway.PaymentRequest) (*gateway.PaymentIntent, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	if g.intent != nil {
		return g.intent, nil
	}
	return &gateway.PaymentIntent{
		ID:          "pay_1",
		Reference:   req.Reference,
		Status:      "pending",
		CheckoutURL: "https://paysuite.tech/checkout/pay_1",
	}, nil
}
