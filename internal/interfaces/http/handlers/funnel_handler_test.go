package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbalabs/simba-checkout-api/internal/application/usecases"
	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

// stubFunnel answers every operation from fixed fields and records the
// references marked as paid.
type stubFunnel struct {
	session *entities.CheckoutSession
	result  *usecases.FunnelResult
	err     error
	paid    []string
}

func (s *stubFunnel) StartSession(context.Context, string) (*entities.CheckoutSession, error) {
	return s.session, s.err
}

func (s *stubFunnel) GetSession(context.Context, string) (*entities.CheckoutSession, error) {
	return s.session, s.err
}

func (s *stubFunnel) ToggleBump(context.Context, string, string) (*entities.CheckoutSession, error) {
	return s.session, s.err
}

func (s *stubFunnel) ApplyCoupon(context.Context, string, string) (*entities.CheckoutSession, error) {
	return s.session, s.err
}

func (s *stubFunnel) Submit(context.Context, string, usecases.SubmitInput) (*entities.CheckoutSession, error) {
	return s.session, s.err
}

func (s *stubFunnel) ConfirmPayment(context.Context, string) (*usecases.FunnelResult, error) {
	return s.result, s.err
}

func (s *stubFunnel) DecideUpsell(context.Context, string, bool) (*usecases.FunnelResult, error) {
	return s.result, s.err
}

func (s *stubFunnel) MarkPaid(_ context.Context, reference string) error {
	s.paid = append(s.paid, reference)
	return s.err
}

func (s *stubFunnel) CloseSession(context.Context, string) error {
	return s.err
}

func checkoutApp(stub *stubFunnel) *fiber.App {
	app := fiber.New()
	handler := NewFunnelHandler(stub)

	checkout := app.Group("/checkout")
	checkout.Post("/:productId/sessions", handler.StartSession)
	checkout.Get("/sessions/:id", handler.GetSession)
	checkout.Post("/sessions/:id/submit", handler.Submit)
	app.Post("/callbacks/paysuite", handler.PaySuiteCallback)
	return app
}

func TestStartSessionEndpoint(t *testing.T) {
	stub := &stubFunnel{session: &entities.CheckoutSession{ID: "s1", Stage: entities.StageForm, Total: 1500}}
	app := checkoutApp(stub)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/checkout/p1/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Data entities.CheckoutSession `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "s1", body.Data.ID)
	assert.Equal(t, 1500.0, body.Data.Total)
}

func TestErrorsCarryStatusAndSafeMessage(t *testing.T) {
	stub := &stubFunnel{err: errx.NotFound("sessão de checkout não encontrada")}
	app := checkoutApp(stub)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/checkout/sessions/sumiu", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "sessão de checkout não encontrada")
}

func TestSubmitEndpointRejectsMalformedBody(t *testing.T) {
	stub := &stubFunnel{session: &entities.CheckoutSession{ID: "s1"}}
	app := checkoutApp(stub)

	req := httptest.NewRequest(fiber.MethodPost, "/checkout/sessions/s1/submit", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPaySuiteCallbackMarksPaid(t *testing.T) {
	stub := &stubFunnel{}
	app := checkoutApp(stub)

	payload := `{"status":"success","data":{"reference":"ORD123","status":"paid"}}`
	req := httptest.NewRequest(fiber.MethodPost, "/callbacks/paysuite", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"ORD123"}, stub.paid)
}

func TestPaySuiteCallbackIgnoresFailedPayments(t *testing.T) {
	stub := &stubFunnel{}
	app := checkoutApp(stub)

	payload := `{"status":"error","data":{"reference":"ORD123","status":"failed"}}`
	req := httptest.NewRequest(fiber.MethodPost, "/callbacks/paysuite", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, stub.paid)
}

func TestPaySuiteCallbackRequiresReference(t *testing.T) {
	stub := &stubFunnel{}
	app := checkoutApp(stub)

	req := httptest.NewRequest(fiber.MethodPost, "/callbacks/paysuite", strings.NewReader(`{"status":"success"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
