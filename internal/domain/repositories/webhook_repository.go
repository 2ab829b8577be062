package repositories

import (
	"context"
	"errors"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"gorm.io/gorm"
)

type WebhookRepository interface {
	GetWebhooks(ctx context.Context, ownerID string) ([]entities.Webhook, error)
	FindByID(ctx context.Context, ownerID, id string) (*entities.Webhook, error)
	Save(ctx context.Context, webhook *entities.Webhook) error
	Delete(ctx context.Context, ownerID, id string) error
}

type webhookRepository struct {
	db *gorm.DB
}

func NewWebhookRepository(db *gorm.DB) WebhookRepository {
	return &webhookRepository{db}
}

func (r *webhookRepository) GetWebhooks(ctx context.Context, ownerID string) ([]entities.Webhook, error) {
	var webhooks []entities.Webhook
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&webhooks).Error
	if err != nil {
		return nil, errx.Persistence(err)
	}
	return webhooks, nil
}

func (r *webhookRepository) FindByID(ctx context.Context, ownerID, id string) (*entities.Webhook, error) {
	var webhook entities.Webhook
	err := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&webhook).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errx.NotFound("webhook não encontrado")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	return &webhook, nil
}

func (r *webhookRepository) Save(ctx context.Context, webhook *entities.Webhook) error {
	if err := r.db.WithContext(ctx).Save(webhook).Error; err != nil {
		return errx.Persistence(err)
	}
	return nil
}

func (r *webhookRepository) Delete(ctx context.Context, ownerID, id string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&entities.Webhook{})
	if result.Error != nil {
		return errx.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return errx.NotFound("webhook não encontrado")
	}
	return nil
}
