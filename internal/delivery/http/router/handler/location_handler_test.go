package handler

import (
	"net/http"
	"testing"

	"courier/internal/domain/entity"
	mockUC "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocationHandler(t *testing.T) (*LocationHandler, *mockUC.MockLocationUsecase) {
	uc := mockUC.NewMockLocationUsecase(t)
	return NewLocationHandler(uc, testLogger()), uc
}

func TestLocationHandler_Add_EmptyBody(t *testing.T) {
	handler, uc := createTestLocationHandler(t)

	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}
	location := &entity.Location{ID: 100, ParcelID: 9}
	uc.EXPECT().
		AddLocation(mock.Anything, uint(9), &usecase.AddLocationInput{}, actor).
		Return(location, nil)

	c, rec := newTestContext(http.MethodPost, "/parcels/9/locations", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	asActor(c, actor.ID, actor.Role)

	err := handler.Add(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLocationHandler_Add_Success(t *testing.T) {
	handler, uc := createTestLocationHandler(t)

	actor := usecase.Actor{ID: 7, Role: entity.RoleDeliveryAgent}
	location := &entity.Location{ID: 101, ParcelID: 9, Latitude: 23.78, Longitude: 90.41}
	uc.EXPECT().
		AddLocation(mock.Anything, uint(9), &usecase.AddLocationInput{
			Latitude:  23.78,
			Longitude: 90.41,
		}, actor).
		Return(location, nil)

	c, rec := newTestContext(http.MethodPost, "/parcels/9/locations", `{"latitude":23.78,"longitude":90.41}`)
	c.SetParamNames("id")
	c.SetParamValues("9")
	asActor(c, actor.ID, actor.Role)

	err := handler.Add(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "23.78")
}
