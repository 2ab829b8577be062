package usecases

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

type fakeWebhookRepo struct {
	webhooks map[string]*entities.Webhook
}

func newFakeWebhookRepo() *fakeWebhookRepo {
	return &fakeWebhookRepo{webhooks: make(map[string]*entities.Webhook)}
}

func (r *fakeWebhookRepo) GetWebhooks(_ context.Context, ownerID string) ([]entities.Webhook, error) {
	var out []entities.Webhook
	for _, w := range r.webhooks {
		if w.OwnerID == ownerID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeWebhookRepo) FindByID(_ context.Context, ownerID, id string) (*entities.Webhook, error) {
	w, ok := r.webhooks[id]
	if !ok || w.OwnerID != ownerID {
		return nil, errx.NotFound("webhook não encontrado")
	}
	return w, nil
}

func (r *fakeWebhookRepo) Save(_ context.Context, webhook *entities.Webhook) error {
	r.webhooks[webhook.ID] = webhook
	return nil
}

func (r *fakeWebhookRepo) Delete(_ context.Context, ownerID, id string) error {
	w, ok := r.webhooks[id]
	if !ok || w.OwnerID != ownerID {
		return errx.NotFound("webhook não encontrado")
	}
	delete(r.webhooks, id)
	return nil
}

type fakeApiKeyRepo struct {
	keys map[string]*entities.ApiKey
}

func newFakeApiKeyRepo() *fakeApiKeyRepo {
	return &fakeApiKeyRepo{keys: make(map[string]*entities.ApiKey)}
}

func (r *fakeApiKeyRepo) GetApiKeys(_ context.Context, ownerID string) ([]entities.ApiKey, error) {
	var out []entities.ApiKey
	for _, k := range r.keys {
		if k.OwnerID == ownerID {
			redacted := *k
			redacted.ClientSecret = ""
			out = append(out, redacted)
		}
	}
	return out, nil
}

func (r *fakeApiKeyRepo) Save(_ context.Context, key *entities.ApiKey) error {
	r.keys[key.ID] = key
	return nil
}

func (r *fakeApiKeyRepo) Delete(_ context.Context, ownerID, id string) error {
	k, ok := r.keys[id]
	if !ok || k.OwnerID != ownerID {
		return errx.NotFound("chave de API não encontrada")
	}
	delete(r.keys, id)
	return nil
}

func TestSaveWebhookValidatesAndFillsDefaults(t *testing.T) {
	uc := NewWebhookUseCase(newFakeWebhookRepo())
	ctx := context.Background()

	_, err := uc.SaveWebhook(ctx, "merchant-1", &entities.Webhook{URL: "https://exemplo.com/hook"})
	assert.Error(t, err)

	_, err = uc.SaveWebhook(ctx, "merchant-1", &entities.Webhook{Name: "Vendas", URL: "ftp://exemplo.com"})
	assert.Error(t, err)

	saved, err := uc.SaveWebhook(ctx, "merchant-1", &entities.Webhook{
		Name:   "Vendas",
		URL:    "https://exemplo.com/hook",
		Events: []string{"purchase.approved"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "merchant-1", saved.OwnerID)
	assert.Equal(t, entities.WebhookStatusActive, saved.Status)
}

func TestCreateApiKeyGeneratesCredentialPair(t *testing.T) {
	repo := newFakeApiKeyRepo()
	uc := NewApiKeyUseCase(repo)
	ctx := context.Background()

	_, err := uc.CreateApiKey(ctx, "merchant-1", "", nil)
	assert.Error(t, err)

	key, err := uc.CreateApiKey(ctx, "merchant-1", "Integração ERP", []string{"products:read"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ck_`), key.ClientID)
	assert.Regexp(t, regexp.MustCompile(`^cs_[0-9a-f]{64}$`), key.ClientSecret)

	// only creation exposes the secret; listings are redacted
	keys, err := uc.GetApiKeys(ctx, "merchant-1")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Empty(t, keys[0].ClientSecret)
}

func TestDeleteApiKeyScopedByOwner(t *testing.T) {
	repo := newFakeApiKeyRepo()
	uc := NewApiKeyUseCase(repo)
	ctx := context.Background()

	key, err := uc.CreateApiKey(ctx, "merchant-1", "Integração", nil)
	require.NoError(t, err)

	assert.Error(t, uc.DeleteApiKey(ctx, "intruso", key.ID))
	assert.NoError(t, uc.DeleteApiKey(ctx, "merchant-1", key.ID))
}
