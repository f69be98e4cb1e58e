package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	httpvalidator "storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderUsecase implements usecase.OrderUsecase with function fields so
// each test supplies only the behavior it needs.
type stubOrderUsecase struct {
	create func(ctx context.Context, storeUserID uint, input *usecase.CreateOrderInput) (*usecase.OrderView, error)
	update func(ctx context.Context, caller usecase.Caller, orderID uint, input *usecase.UpdateOrderInput) (*usecase.OrderView, error)
	list   func(ctx context.Context, storeUserID uint, term string) ([]*usecase.OrderView, error)
	lookup func(ctx context.Context, orderID uint) (*usecase.OrderView, error)
	delete func(ctx context.Context, caller usecase.Caller, orderID uint) error
}

func (s *stubOrderUsecase) Create(ctx context.Context, storeUserID uint, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
	return s.create(ctx, storeUserID, input)
}

func (s *stubOrderUsecase) Update(ctx context.Context, caller usecase.Caller, orderID uint, input *usecase.UpdateOrderInput) (*usecase.OrderView, error) {
	return s.update(ctx, caller, orderID, input)
}

func (s *stubOrderUsecase) List(ctx context.Context, storeUserID uint, term string) ([]*usecase.OrderView, error) {
	return s.list(ctx, storeUserID, term)
}

func (s *stubOrderUsecase) Lookup(ctx context.Context, orderID uint) (*usecase.OrderView, error) {
	return s.lookup(ctx, orderID)
}

func (s *stubOrderUsecase) Delete(ctx context.Context, caller usecase.Caller, orderID uint) error {
	return s.delete(ctx, caller, orderID)
}

func newOrderTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	v, err := httpvalidator.New()
	require.NoError(t, err)
	e.Validator = v

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uint, roles ...entity.Role) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRoles, entity.Roles(roles))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderHandler_Store_Success(t *testing.T) {
	uc := &stubOrderUsecase{
		create: func(_ context.Context, storeUserID uint, input *usecase.CreateOrderInput) (*usecase.OrderView, error) {
			assert.Equal(t, uint(7), storeUserID)
			assert.Equal(t, uint(3), input.BusinessID)

			return &usecase.OrderView{ID: 42, Services: input.Services, FullPrice: input.FullPrice}, nil
		},
	}
	h := NewOrderHandler(uc, testLogger())

	body := `{"business_id": 3, "services": "POS installation", "status": 1, "full_price": "150000"}`
	c, rec := newOrderTestContext(t, http.MethodPost, "/v1/orders/store", body)
	authenticate(c, 7, entity.RoleUser)

	require.NoError(t, h.Store(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Order created successfully", envelope.Message)
	assert.Contains(t, string(envelope.Data), `"id":42`)
}

func TestOrderHandler_Store_ValidationFailure(t *testing.T) {
	h := NewOrderHandler(&stubOrderUsecase{}, testLogger())

	// full_price missing and status out of range: the usecase is never reached.
	body := `{"business_id": 3, "services": "POS installation", "status": 900}`
	c, _ := newOrderTestContext(t, http.MethodPost, "/v1/orders/store", body)
	authenticate(c, 7, entity.RoleUser)

	err := h.Store(c)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "The full_price field is required.")
}

func TestOrderHandler_Store_Unauthenticated(t *testing.T) {
	h := NewOrderHandler(&stubOrderUsecase{}, testLogger())

	c, rec := newOrderTestContext(t, http.MethodPost, "/v1/orders/store", `{"business_id":3}`)

	require.NoError(t, h.Store(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_Show_PassesSearchTerm(t *testing.T) {
	uc := &stubOrderUsecase{
		list: func(_ context.Context, storeUserID uint, term string) ([]*usecase.OrderView, error) {
			assert.Equal(t, uint(7), storeUserID)
			assert.Equal(t, "ahmadi", term)

			return []*usecase.OrderView{{ID: 42}}, nil
		},
	}
	h := NewOrderHandler(uc, testLogger())

	c, rec := newOrderTestContext(t, http.MethodGet, "/v1/orders/show?q=ahmadi", "")
	authenticate(c, 7, entity.RoleUser)

	require.NoError(t, h.Show(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_PublicShow_InvalidID(t *testing.T) {
	h := NewOrderHandler(&stubOrderUsecase{}, testLogger())

	c, _ := newOrderTestContext(t, http.MethodGet, "/v1/user-orders/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.PublicShow(c)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderHandler_Update_ForwardsCaller(t *testing.T) {
	uc := &stubOrderUsecase{
		update: func(_ context.Context, caller usecase.Caller, orderID uint, input *usecase.UpdateOrderInput) (*usecase.OrderView, error) {
			assert.Equal(t, uint(7), caller.UserID)
			assert.True(t, caller.Roles.Contains(entity.RoleAdmin))
			assert.Equal(t, uint(42), orderID)
			require.NotNil(t, input.Status)
			assert.Equal(t, 2, *input.Status)

			return &usecase.OrderView{ID: 42, Status: 2}, nil
		},
	}
	h := NewOrderHandler(uc, testLogger())

	c, rec := newOrderTestContext(t, http.MethodPost, "/v1/orders/42", `{"status": 2}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	authenticate(c, 7, entity.RoleAdmin)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
