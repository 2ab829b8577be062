package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

type ApiKeyUseCase interface {
	GetApiKeys(ctx context.Context, ownerID string) ([]entities.ApiKey, error)
	CreateApiKey(ctx context.Context, ownerID, name string, scopes []string) (*entities.ApiKey, error)
	DeleteApiKey(ctx context.Context, ownerID, id string) error
}

type apiKeyUseCase struct {
	apiKeyRepo repositories.ApiKeyRepository
}

func NewApiKeyUseCase(apiKeyRepo repositories.ApiKeyRepository) ApiKeyUseCase {
	return &apiKeyUseCase{apiKeyRepo}
}

func (uc *apiKeyUseCase) GetApiKeys(ctx context.Context, ownerID string) ([]entities.ApiKey, error) {
	return uc.apiKeyRepo.GetApiKeys(ctx, ownerID)
}

// CreateApiKey generates the credential pair. The full secret is returned
// only here; listings come back redacted.
func (uc *apiKeyUseCase) CreateApiKey(ctx context.Context, ownerID, name string, scopes []string) (*entities.ApiKey, error) {
	if name == "" {
		return nil, errx.Validation("nome da chave é obrigatório")
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, errx.Persistence(err)
	}

	key := &entities.ApiKey{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		CreatedAt:    time.Now(),
		Name:         name,
		ClientID:     "ck_" + uuid.NewString(),
		ClientSecret: "cs_" + hex.EncodeToString(secret),
		Scopes:       scopes,
	}

	if err := uc.apiKeyRepo.Save(ctx, key); err != nil {
		return nil, err
	}
	return key, nil
}

func (uc *apiKeyUseCase) DeleteApiKey(ctx context.Context, ownerID, id string) error {
	return uc.apiKeyRepo.Delete(ctx, ownerID, id)
}
