package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

type ProductUseCase interface {
	GetProducts(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Product, int64, error)
	GetProduct(ctx context.Context, ownerID, id string) (*entities.Product, error)
	SaveProduct(ctx context.Context, ownerID string, product *entities.Product) (*entities.Product, error)
	DeleteProduct(ctx context.Context, ownerID, id string) error
}

type productUseCase struct {
	productRepo repositories.ProductRepository
}

func NewProductUseCase(productRepo repositories.ProductRepository) ProductUseCase {
	return &productUseCase{productRepo}
}

func (uc *productUseCase) GetProducts(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if orderBy == "" {
		orderBy = "created_at desc"
	}
	return uc.productRepo.GetProducts(ctx, ownerID, page, limit, orderBy)
}

func (uc *productUseCase) GetProduct(ctx context.Context, ownerID, id string) (*entities.Product, error) {
	return uc.productRepo.FindByID(ctx, ownerID, id)
}

// SaveProduct is a full replace. It normalizes offers so that exactly one
// is flagged default and the product price mirrors it, validates the
// funnel and coupon configuration, and on first save generates the id,
// creation timestamp and checkout links.
func (uc *productUseCase) SaveProduct(ctx context.Context, ownerID string, product *entities.Product) (*entities.Product, error) {
	product.OwnerID = ownerID

	if err := normalizeOffers(product); err != nil {
		return nil, err
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	now := time.Now()
	if product.ID == "" {
		product.ID = uuid.NewString()
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if product.Status == "" {
		product.Status = entities.ProductStatusDraft
	}
	if product.Links == nil || product.Links.Checkout == "" {
		salesPage := product.SalesPageURL
		if salesPage == "" {
			salesPage = "https://simba.app/p/" + product.ID
		}
		product.Links = &entities.ProductLinks{
			Checkout:  "https://simba.app/pay/" + product.ID,
			SalesPage: salesPage,
		}
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, ownerID, id string) error {
	return uc.productRepo.Delete(ctx, ownerID, id)
}

// normalizeOffers enforces the offer invariant: exactly one default offer,
// whose price the product price mirrors. A product arriving with no offers
// gets a default one created from its own price.
func normalizeOffers(product *entities.Product) error {
	if len(product.Offers) == 0 {
		product.Offers = []entities.Offer{{
			ID:        uuid.NewString(),
			Name:      "Oferta Padrão",
			Price:     product.Price,
			IsDefault: true,
		}}
	}

	defaults := 0
	for i := range product.Offers {
		if product.Offers[i].ID == "" {
			product.Offers[i].ID = uuid.NewString()
		}
		if product.Offers[i].Price < 0 {
			return errx.Validation("o preço de uma oferta não pode ser negativo")
		}
		if product.Offers[i].IsDefault {
			defaults++
		}
	}

	switch {
	case defaults == 0:
		product.Offers[0].IsDefault = true
	case defaults > 1:
		return errx.Validation("apenas uma oferta pode ser a padrão")
	}

	offer, _ := product.DefaultOffer()
	product.Price = offer.Price
	return nil
}

func validateProduct(product *entities.Product) error {
	if product.Name == "" {
		return errx.Validation("nome do produto é obrigatório")
	}

	switch product.ProductType {
	case entities.ProductTypeEbook, entities.ProductTypeCourse, entities.ProductTypeApplication:
	default:
		return errx.Validation("tipo de produto inválido")
	}

	for i := range product.OrderBumps {
		if product.OrderBumps[i].ID == "" {
			product.OrderBumps[i].ID = uuid.NewString()
		}
		if product.OrderBumps[i].Price < 0 {
			return errx.Validation("o preço de um order bump não pode ser negativo")
		}
	}

	for i := range product.Coupons {
		if product.Coupons[i].ID == "" {
			product.Coupons[i].ID = uuid.NewString()
		}
		if product.Coupons[i].Percentage < 0 || product.Coupons[i].Percentage > 100 {
			return errx.Validation("percentual de cupom deve estar entre 0 e 100")
		}
	}

	if f := product.Funnel; f != nil {
		if f.UpsellPrice < 0 || f.DownsellPrice < 0 {
			return errx.Validation("preço de funil não pode ser negativo")
		}
		// Downsell só é alcançável depois de um upsell recusado
		if f.HasDownsell() && !f.HasUpsell() {
			return errx.Validation("downsell requer um upsell configurado")
		}
	}

	return nil
}
