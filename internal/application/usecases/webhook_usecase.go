package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

type WebhookUseCase interface {
	GetWebhooks(ctx context.Context, ownerID string) ([]entities.Webhook, error)
	SaveWebhook(ctx context.Context, ownerID string, webhook *entities.Webhook) (*entities.Webhook, error)
	DeleteWebhook(ctx context.Context, ownerID, id string) error
}

type webhookUseCase struct {
	webhookRepo repositories.WebhookRepository
}

func NewWebhookUseCase(webhookRepo repositories.WebhookRepository) WebhookUseCase {
	return &webhookUseCase{webhookRepo}
}

func (uc *webhookUseCase) GetWebhooks(ctx context.Context, ownerID string) ([]entities.Webhook, error) {
	return uc.webhookRepo.GetWebhooks(ctx, ownerID)
}

func (uc *webhookUseCase) SaveWebhook(ctx context.Context, ownerID string, webhook *entities.Webhook) (*entities.Webhook, error) {
	if webhook.Name == "" {
		return nil, errx.Validation("nome do webhook é obrigatório")
	}
	if !strings.HasPrefix(webhook.URL, "http://") && !strings.HasPrefix(webhook.URL, "https://") {
		return nil, errx.Validation("URL do webhook inválida")
	}

	webhook.OwnerID = ownerID
	now := time.Now()
	if webhook.ID == "" {
		webhook.ID = uuid.NewString()
		webhook.CreatedAt = now
	}
	webhook.UpdatedAt = now
	if webhook.Status == "" {
		webhook.Status = entities.WebhookStatusActive
	}

	if err := uc.webhookRepo.Save(ctx, webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

func (uc *webhookUseCase) DeleteWebhook(ctx context.Context, ownerID, id string) error {
	return uc.webhookRepo.Delete(ctx, ownerID, id)
}
