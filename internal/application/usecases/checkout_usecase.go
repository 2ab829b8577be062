package usecases

import (
	"context"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

// Move directions
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// CheckoutSettingsInput is a partial update of the checkout configuration.
// Nil fields are left untouched; the settings objects are merged, never
// replaced wholesale.
type CheckoutSettingsInput struct {
	PrimaryColor *string             `json:"primary_color,omitempty"`
	Image        *ImageSettingsInput `json:"image,omitempty"`
	Video        *VideoSettingsInput `json:"video,omitempty"`
	Timer        *TimerSettingsInput `json:"timer,omitempty"`
}

type ImageSettingsInput struct {
	AssetRef *string `json:"asset_ref,omitempty"`
}

type VideoSettingsInput struct {
	Source   *string `json:"source,omitempty"`
	URL      *string `json:"url,omitempty"`
	AssetRef *string `json:"asset_ref,omitempty"`
}

type TimerSettingsInput struct {
	Enabled         *bool   `json:"enabled,omitempty"`
	Minutes         *int    `json:"minutes,omitempty"`
	Text            *string `json:"text,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	TextColor       *string `json:"text_color,omitempty"`
}

// CheckoutUseCase mutates a product's checkout page composition. Every
// edit round-trips through a full product save; last write wins.
type CheckoutUseCase interface {
	ToggleComponent(ctx context.Context, ownerID, productID string, component entities.ComponentType) (*entities.Product, error)
	MoveComponent(ctx context.Context, ownerID, productID string, index int, direction string) (*entities.Product, error)
	UpdateSettings(ctx context.Context, ownerID, productID string, input CheckoutSettingsInput) (*entities.Product, error)
}

type checkoutUseCase struct {
	productRepo repositories.ProductRepository
}

func NewCheckoutUseCase(productRepo repositories.ProductRepository) CheckoutUseCase {
	return &checkoutUseCase{productRepo}
}

// ToggleComponent removes the component when present, otherwise appends it
// at the end of the sequence. Enabling the timer is the one side-effecting
// toggle: its settings are created with defaults when absent and marked
// enabled.
func (uc *checkoutUseCase) ToggleComponent(ctx context.Context, ownerID, productID string, component entities.ComponentType) (*entities.Product, error) {
	switch component {
	case entities.ComponentHeader, entities.ComponentImage, entities.ComponentVideo,
		entities.ComponentTimer, entities.ComponentText, entities.ComponentForm, entities.ComponentSeal:
	default:
		return nil, errx.Validation("componente de checkout desconhecido")
	}

	product, err := uc.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	cfg := ensureConfig(product)

	if component == entities.ComponentTimer && !cfg.HasComponent(entities.ComponentTimer) {
		if cfg.Timer == nil {
			cfg.Timer = entities.NewTimerSettings()
		}
		cfg.Timer.Enabled = true
	}

	if cfg.HasComponent(component) {
		kept := cfg.Components[:0]
		for _, existing := range cfg.Components {
			if existing != component {
				kept = append(kept, existing)
			}
		}
		cfg.Components = kept
	} else {
		cfg.Components = append(cfg.Components, component)
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// MoveComponent swaps the component at index with its neighbor. Moving the
// first component up or the last down is a no-op, not an error.
func (uc *checkoutUseCase) MoveComponent(ctx context.Context, ownerID, productID string, index int, direction string) (*entities.Product, error) {
	if direction != MoveUp && direction != MoveDown {
		return nil, errx.Validation("direção deve ser up ou down")
	}

	product, err := uc.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	cfg := ensureConfig(product)

	if index < 0 || index >= len(cfg.Components) {
		return nil, errx.Validation("índice de componente fora da sequência")
	}

	components := cfg.Components
	if direction == MoveUp && index > 0 {
		components[index], components[index-1] = components[index-1], components[index]
	} else if direction == MoveDown && index < len(components)-1 {
		components[index], components[index+1] = components[index+1], components[index]
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateSettings merges the partial input into the component settings,
// preserving every unspecified field.
func (uc *checkoutUseCase) UpdateSettings(ctx context.Context, ownerID, productID string, input CheckoutSettingsInput) (*entities.Product, error) {
	product, err := uc.productRepo.FindByID(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}
	cfg := ensureConfig(product)

	if input.PrimaryColor != nil {
		cfg.PrimaryColor = *input.PrimaryColor
	}
	if input.Image != nil && input.Image.AssetRef != nil {
		cfg.Image.AssetRef = *input.Image.AssetRef
		cfg.Image.URL = ""
	}
	if input.Video != nil {
		if input.Video.Source != nil {
			if *input.Video.Source != entities.VideoSourceExternal && *input.Video.Source != entities.VideoSourceLocal {
				return nil, errx.Validation("origem de vídeo deve ser external ou local")
			}
			cfg.Video.Source = *input.Video.Source
		}
		if input.Video.URL != nil {
			cfg.Video.URL = *input.Video.URL
		}
		if input.Video.AssetRef != nil {
			cfg.Video.AssetRef = *input.Video.AssetRef
			cfg.Video.AssetURL = ""
		}
	}
	if input.Timer != nil {
		if cfg.Timer == nil {
			// A configuração do timer é garantida pela regra de inicialização;
			// um produto antigo ainda pode chegar sem ela.
			cfg.Timer = entities.NewTimerSettings()
		}
		timer := cfg.Timer
		if input.Timer.Enabled != nil {
			timer.Enabled = *input.Timer.Enabled
		}
		if input.Timer.Minutes != nil {
			if *input.Timer.Minutes <= 0 {
				return nil, errx.Validation("minutos do cronômetro devem ser positivos")
			}
			timer.Minutes = *input.Timer.Minutes
		}
		if input.Timer.Text != nil {
			timer.Text = *input.Timer.Text
		}
		if input.Timer.BackgroundColor != nil {
			timer.BackgroundColor = *input.Timer.BackgroundColor
		}
		if input.Timer.TextColor != nil {
			timer.TextColor = *input.Timer.TextColor
		}
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func ensureConfig(product *entities.Product) *entities.CheckoutConfig {
	if product.CheckoutConfig == nil {
		product.CheckoutConfig = entities.NewCheckoutConfig()
	}
	return product.CheckoutConfig
}
