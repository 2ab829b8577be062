package repositories

import (
	"context"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ApiKeyRepository interface {
	GetApiKeys(ctx context.Context, ownerID string) ([]entities.ApiKey, error)
	Save(ctx context.Context, key *entities.ApiKey) error
	Delete(ctx context.Context, ownerID, id string) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewApiKeyRepository(db *gorm.DB) ApiKeyRepository {
	return &apiKeyRepository{db}
}

func (r *apiKeyRepository) GetApiKeys(ctx context.Context, ownerID string) ([]entities.ApiKey, error) {
	var keys []entities.ApiKey
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&keys).Error
	if err != nil {
		return nil, errx.Persistence(err)
	}
	// O secret nunca sai em listagens, apenas na criação.
	for i := range keys {
		keys[i].ClientSecret = ""
	}
	return keys, nil
}

func (r *apiKeyRepository) Save(ctx context.Context, key *entities.ApiKey) error {
	if err := r.db.WithContext(ctx).Save(key).Error; err != nil {
		return errx.Persistence(err)
	}
	return nil
}

func (r *apiKeyRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.ApiKey{})
	if result.Error != nil {
		return errx.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return errx.NotFound("chave não encontrada")
	}
	return nil
}
