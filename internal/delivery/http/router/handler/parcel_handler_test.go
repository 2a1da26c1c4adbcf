package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/validator"
	"courier/internal/domain/entity"
	mockUC "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an Echo context carrying the request body, with the
// request validator installed the same way the server wires it.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

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

// asActor seeds the context values the auth middleware would set.
func asActor(c echo.Context, id uint, role entity.Role) {
	c.Set(middleware.ContextKeyUserID, id)
	c.Set(middleware.ContextKeyUserRole, role)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestParcelHandler(t *testing.T) (*ParcelHandler, *mockUC.MockParcelUsecase) {
	uc := mockUC.NewMockParcelUsecase(t)
	return NewParcelHandler(uc, testLogger()), uc
}

func TestParcelHandler_UpdateStatus_EmptyBody(t *testing.T) {
	handler, _ := createTestParcelHandler(t)

	c, rec := newTestContext(http.MethodPatch, "/parcels/1/status", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	asActor(c, 7, entity.RoleDeliveryAgent)

	err := handler.UpdateStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestParcelHandler_Update_EmptyBody(t *testing.T) {
	handler, uc := createTestParcelHandler(t)

	parcel := &entity.Parcel{ID: 1, Status: entity.StatusPending}
	uc.EXPECT().
		Update(mock.Anything, uint(1), &usecase.UpdateParcelInput{}).
		Return(parcel, nil)

	c, rec := newTestContext(http.MethodPatch, "/parcels/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	asActor(c, 1, entity.RoleAdmin)

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParcelHandler_Create_MissingAddresses(t *testing.T) {
	handler, _ := createTestParcelHandler(t)

	c, rec := newTestContext(http.MethodPost, "/parcels", `{"size":"small"}`)
	asActor(c, 3, entity.RoleCustomer)

	err := handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestParcelHandler_Create_EmptyBody(t *testing.T) {
	handler, _ := createTestParcelHandler(t)

	c, rec := newTestContext(http.MethodPost, "/parcels", "")
	asActor(c, 3, entity.RoleCustomer)

	err := handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestParcelHandler_Create_Success(t *testing.T) {
	handler, uc := createTestParcelHandler(t)

	parcel := &entity.Parcel{
		ID:              1,
		TrackingNumber:  "CPM-TEST-ABC123",
		CustomerID:      3,
		PickupAddress:   "1 Origin Way",
		DeliveryAddress: "2 Destination Rd",
		Status:          entity.StatusPending,
	}
	uc.EXPECT().
		Create(mock.Anything, uint(3), mock.MatchedBy(func(input *usecase.CreateParcelInput) bool {
			return input.PickupAddress == "1 Origin Way" && input.DeliveryAddress == "2 Destination Rd"
		})).
		Return(parcel, nil)

	body := `{"pickup_address":"1 Origin Way","delivery_address":"2 Destination Rd"}`
	c, rec := newTestContext(http.MethodPost, "/parcels", body)
	asActor(c, 3, entity.RoleCustomer)

	err := handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "CPM-TEST-ABC123")
}
