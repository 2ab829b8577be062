package repositories

import (
	"context"
	"errors"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ProductRepository is the persistence gateway for products. Every call is
// scoped by the owner identifier passed in explicitly, never taken from
// ambient state, so sessions cannot cross-contaminate. FindByIDPublic is
// the one unscoped read: checkout links are public.
type ProductRepository interface {
	GetProducts(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Product, int64, error)
	FindByID(ctx context.Context, ownerID, id string) (*entities.Product, error)
	FindByIDPublic(ctx context.Context, id string) (*entities.Product, error)
	Save(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, ownerID, id string) error
}

type productRepository struct {
	db     *gorm.DB
	assets AssetResolver
}

func NewProductRepository(db *gorm.DB, assets AssetResolver) ProductRepository {
	return &productRepository{db, assets}
}

func (r *productRepository) GetProducts(ctx context.Context, ownerID string, page, limit int, orderBy string) ([]entities.Product, int64, error) {
	var products []entities.Product
	var total int64

	base := r.db.WithContext(ctx).Model(&entities.Product{}).Where("owner_id = ?", ownerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errx.Persistence(err)
	}

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if orderBy != "" {
		query = query.Order(orderBy)
	}

	if err := query.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, errx.Persistence(err)
	}

	for i := range products {
		r.resolve(&products[i])
	}
	return products, total, nil
}

func (r *productRepository) FindByID(ctx context.Context, ownerID, id string) (*entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errx.NotFound("produto não encontrado")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	r.resolve(&product)
	return &product, nil
}

func (r *productRepository) FindByIDPublic(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errx.NotFound("produto não encontrado")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	r.resolve(&product)
	return &product, nil
}

// Save is a full replace of the record, not a patch.
func (r *productRepository) Save(ctx context.Context, product *entities.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return errx.Persistence(err)
	}
	r.resolve(product)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Product{})
	if result.Error != nil {
		return errx.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return errx.NotFound("produto não encontrado")
	}
	return nil
}

// resolve maps stored asset references onto displayable URLs.
func (r *productRepository) resolve(p *entities.Product) {
	if p.ImageRef != "" {
		p.ImageURL = r.assets.ResolveURL(p.ImageRef)
	}
	if p.FileRef != "" {
		p.FileURL = r.assets.ResolveURL(p.FileRef)
	}
	for i := range p.OrderBumps {
		if p.OrderBumps[i].ImageRef != "" {
			p.OrderBumps[i].ImageURL = r.assets.ResolveURL(p.OrderBumps[i].ImageRef)
		}
	}
	if cfg := p.CheckoutConfig; cfg != nil {
		if cfg.Image.AssetRef != "" {
			cfg.Image.URL = r.assets.ResolveURL(cfg.Image.AssetRef)
		}
		if cfg.Video.AssetRef != "" {
			cfg.Video.AssetURL = r.assets.ResolveURL(cfg.Video.AssetRef)
		}
	}
}
