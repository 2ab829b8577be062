package usecases

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/pricing"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
	"github.com/simbalabs/simba-checkout-api/internal/infrastructure/gateway"
)

// Funnel outcomes returned to the shopper-facing client after a
// confirmation or upsell decision.
const (
	OutcomeRedirect = "redirect"
	OutcomeUpsell   = "upsell"
	OutcomeSuccess  = "success"
)

// SubmitInput carries the shopper form fields. The payable amount is never
// part of it: it is recomputed from the stored product.
type SubmitInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Whatsapp     string `json:"whatsapp"`
	PaymentPhone string `json:"payment_phone"`
	Method       string `json:"method"`
}

// FunnelResult describes where the funnel goes next. Redirect means the
// shopper leaves the app and the session terminates; Upsell carries the
// product displayed in-app with its resolved price.
type FunnelResult struct {
	Outcome     string                    `json:"outcome"`
	RedirectURL string                    `json:"redirect_url,omitempty"`
	Upsell      *UpsellOffer              `json:"upsell,omitempty"`
	Session     *entities.CheckoutSession `json:"session,omitempty"`
}

type UpsellOffer struct {
	Product *entities.Product `json:"product"`
	Price   float64           `json:"price"`
}

// FunnelUseCase drives one checkout session through the post-purchase
// funnel: form → processing → (iframe | error) → confirmed →
// (upsell | success), with accept/decline branching to downsell.
type FunnelUseCase interface {
	StartSession(ctx context.Context, productID string) (*entities.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
	ToggleBump(ctx context.Context, sessionID, bumpID string) (*entities.CheckoutSession, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*entities.CheckoutSession, error)
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*entities.CheckoutSession, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*FunnelResult, error)
	DecideUpsell(ctx context.Context, sessionID string, accept bool) (*FunnelResult, error)
	MarkPaid(ctx context.Context, reference string) error
	CloseSession(ctx context.Context, sessionID string) error
}

type funnelUseCase struct {
	productRepo repositories.ProductRepository
	sessionRepo repositories.SessionRepository
	payments    gateway.Client
}

func NewFunnelUseCase(productRepo repositories.ProductRepository, sessionRepo repositories.SessionRepository, payments gateway.Client) FunnelUseCase {
	return &funnelUseCase{productRepo, sessionRepo, payments}
}

// StartSession opens a checkout for a product. Drafts are not sellable.
func (uc *funnelUseCase) StartSession(ctx context.Context, productID string) (*entities.CheckoutSession, error) {
	product, err := uc.productRepo.FindByIDPublic(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entities.ProductStatusActive {
		return nil, errx.NotFound("produto não está disponível para venda")
	}

	now := time.Now()
	session := &entities.CheckoutSession{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		CreatedAt: now,
		UpdatedAt: now,
		Stage:     entities.StageForm,
		Total:     pricing.Round(pricing.BasePrice(product)),
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *funnelUseCase) GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	return uc.sessionRepo.Get(ctx, sessionID)
}

// ToggleBump flips one bump selection. Toggling twice restores the prior
// selection exactly.
func (uc *funnelUseCase) ToggleBump(ctx context.Context, sessionID, bumpID string) (*entities.CheckoutSession, error) {
	session, product, err := uc.sessionAndProduct(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != entities.StageForm && session.Stage != entities.StageError {
		return nil, errx.Conflict("a seleção não pode mudar depois do envio")
	}
	if _, ok := product.FindBump(bumpID); !ok {
		return nil, errx.NotFound("order bump não encontrado")
	}

	session.SelectedBumps = pricing.ToggleBump(session.SelectedBumps, bumpID)
	return uc.retotal(ctx, session, product)
}

// ApplyCoupon validates and applies a coupon code; an empty code clears it.
func (uc *funnelUseCase) ApplyCoupon(ctx context.Context, sessionID, code string) (*entities.CheckoutSession, error) {
	session, product, err := uc.sessionAndProduct(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != entities.StageForm && session.Stage != entities.StageError {
		return nil, errx.Conflict("a seleção não pode mudar depois do envio")
	}

	code = strings.TrimSpace(code)
	if code != "" {
		if _, ok := product.FindCoupon(code); !ok {
			return nil, errx.Validation("cupom inválido ou inativo")
		}
	}
	session.CouponCode = code
	return uc.retotal(ctx, session, product)
}

// Submit validates the shopper input, recomputes the total from the
// stored product and initiates the payment at the gateway. On success the
// session holds the hosted checkout URL and moves to iframe; on gateway
// failure it moves to error with the gateway's message and the shopper may
// retry. A second submit while one call is outstanding is rejected.
func (uc *funnelUseCase) Submit(ctx context.Context, sessionID string, input SubmitInput) (*entities.CheckoutSession, error) {
	session, product, err := uc.sessionAndProduct(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Stage {
	case entities.StageForm, entities.StageError:
	case entities.StageProcessing:
		return nil, errx.Conflict("pagamento já está sendo processado")
	default:
		return nil, errx.Conflict("a sessão já passou do formulário")
	}

	if err := validateSubmit(input); err != nil {
		return nil, err
	}

	// O valor é sempre recalculado do produto armazenado, nunca aceito do
	// cliente.
	total, err := pricing.Total(product, session.SelectedBumps, session.CouponCode)
	if err != nil {
		return nil, err
	}

	session.Customer = entities.Customer{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Whatsapp:     strings.TrimSpace(input.Whatsapp),
		PaymentPhone: strings.TrimSpace(input.PaymentPhone),
	}
	session.PaymentMethod = input.Method
	session.Total = total
	session.Reference = gateway.NewReference()
	session.Stage = entities.StageProcessing
	session.LastError = ""
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	description := "Produto " + product.Name
	if len(session.SelectedBumps) > 0 {
		description += " + Adicionais"
	}

	intent, err := uc.payments.InitiatePayment(ctx, gateway.PaymentRequest{
		Amount:      total,
		Reference:   session.Reference,
		Description: description,
		Method:      input.Method,
		Mobile:      input.PaymentPhone,
		Email:       session.Customer.Email,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Shopper closed the checkout mid-call; put the session back on
			// the form without surfacing an error.
			session.Stage = entities.StageForm
			_ = uc.sessionRepo.Save(context.WithoutCancel(ctx), session)
			return session, nil
		}
		session.Stage = entities.StageError
		session.LastError = errx.MessageOf(err)
		session.UpdatedAt = time.Now()
		if saveErr := uc.sessionRepo.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		log.Warn().Str("session_id", session.ID).Str("reference", session.Reference).
			Str("error", session.LastError).Msg("gateway recusou o pagamento")
		return session, nil
	}

	session.PaymentURL = intent.CheckoutURL
	session.Stage = entities.StageIframe
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	log.Info().Str("session_id", session.ID).Str("reference", session.Reference).
		Float64("total", total).Msg("pagamento iniciado")
	return session, nil
}

// ConfirmPayment handles the shopper's "já realizei o pagamento" action.
// Precedence is explicit: upsell redirect URL first (the session
// terminates, control leaves the app), then the in-app upsell product,
// then success.
func (uc *funnelUseCase) ConfirmPayment(ctx context.Context, sessionID string) (*FunnelResult, error) {
	session, product, err := uc.sessionAndProduct(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != entities.StageIframe {
		return nil, errx.Conflict("a sessão não está aguardando confirmação de pagamento")
	}

	funnel := product.Funnel

	// 1. URL externa de upsell vence sempre
	if funnel != nil && funnel.UpsellPageURL != "" {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
			return nil, err
		}
		return &FunnelResult{Outcome: OutcomeRedirect, RedirectURL: funnel.UpsellPageURL}, nil
	}

	// 2. Upsell interno quando só há produto referenciado
	if funnel != nil && funnel.UpsellProductID != "" {
		upsell, err := uc.productRepo.FindByIDPublic(ctx, funnel.UpsellProductID)
		switch {
		case err == nil:
			session.Stage = entities.StageUpsell
			session.UpsellProductID = upsell.ID
			session.UpdatedAt = time.Now()
			if err := uc.sessionRepo.Save(ctx, session); err != nil {
				return nil, err
			}
			return &FunnelResult{
				Outcome: OutcomeUpsell,
				Upsell:  &UpsellOffer{Product: upsell, Price: pricing.UpsellPrice(funnel, upsell)},
				Session: session,
			}, nil
		case errx.StatusOf(err) == http.StatusNotFound:
			// Produto de upsell apagado: segue direto para o sucesso
			log.Warn().Str("upsell_product_id", funnel.UpsellProductID).Msg("produto de upsell indisponível")
		default:
			// Falha transitória: a sessão continua em iframe e o comprador
			// pode confirmar de novo.
			return nil, err
		}
	}

	// 3. Sem funil configurado
	return uc.finish(ctx, session)
}

// DecideUpsell resolves the in-app upsell: accepting simulates the
// one-click charge and completes; declining goes to the downsell redirect
// when configured, else success.
func (uc *funnelUseCase) DecideUpsell(ctx context.Context, sessionID string, accept bool) (*FunnelResult, error) {
	session, product, err := uc.sessionAndProduct(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != entities.StageUpsell {
		return nil, errx.Conflict("a sessão não está exibindo um upsell")
	}

	if accept {
		log.Info().Str("session_id", session.ID).Str("upsell_product_id", session.UpsellProductID).
			Msg("upsell aceito")
		return uc.finish(ctx, session)
	}

	if funnel := product.Funnel; funnel != nil && funnel.DownsellPageURL != "" {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
			return nil, err
		}
		return &FunnelResult{Outcome: OutcomeRedirect, RedirectURL: funnel.DownsellPageURL}, nil
	}
	return uc.finish(ctx, session)
}

// MarkPaid records the gateway callback for a payment reference. Arriving
// before the shopper self-confirms, it upgrades the confirmation from
// self-reported to verified.
func (uc *funnelUseCase) MarkPaid(ctx context.Context, reference string) error {
	session, err := uc.sessionRepo.FindByReference(ctx, reference)
	if err != nil {
		return err
	}
	session.PaymentReceived = true
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return err
	}
	log.Info().Str("reference", reference).Str("session_id", session.ID).Msg("pagamento confirmado via callback")
	return nil
}

// CloseSession destroys the session regardless of stage. Closing from
// iframe or upsell abandons an in-flight payment with no reconciliation.
func (uc *funnelUseCase) CloseSession(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}

func (uc *funnelUseCase) finish(ctx context.Context, session *entities.CheckoutSession) (*FunnelResult, error) {
	session.Stage = entities.StageSuccess
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return &FunnelResult{Outcome: OutcomeSuccess, Session: session}, nil
}

func (uc *funnelUseCase) sessionAndProduct(ctx context.Context, sessionID string) (*entities.CheckoutSession, *entities.Product, error) {
	session, err := uc.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	product, err := uc.productRepo.FindByIDPublic(ctx, session.ProductID)
	if err != nil {
		return nil, nil, err
	}
	return session, product, nil
}

func (uc *funnelUseCase) retotal(ctx context.Context, session *entities.CheckoutSession, product *entities.Product) (*entities.CheckoutSession, error) {
	total, err := pricing.Total(product, session.SelectedBumps, session.CouponCode)
	if err != nil {
		return nil, err
	}
	session.Total = total
	session.UpdatedAt = time.Now()
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func validateSubmit(input SubmitInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errx.Validation("nome é obrigatório")
	}
	if strings.TrimSpace(input.Email) == "" {
		return errx.Validation("e-mail é obrigatório")
	}
	if strings.TrimSpace(input.Whatsapp) == "" {
		return errx.Validation("contato é obrigatório")
	}

	switch input.Method {
	case entities.MethodMpesa, entities.MethodEmola:
		if strings.TrimSpace(input.PaymentPhone) == "" {
			return errx.Validation("número de pagamento é obrigatório")
		}
	case entities.MethodCreditCard:
	default:
		return errx.Validation("método de pagamento inválido")
	}
	return nil
}
