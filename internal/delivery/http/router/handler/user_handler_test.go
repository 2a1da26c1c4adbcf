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

func createTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	uc := mockUC.NewMockUserUsecase(t)
	return NewUserHandler(uc, testLogger()), uc
}

func TestUserHandler_Register_EmptyBody(t *testing.T) {
	handler, _ := createTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/register", "")

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	handler, _ := createTestUserHandler(t)

	body := `{"name":"Test User","email":"not-an-email","password":"Password123!"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	handler, _ := createTestUserHandler(t)

	body := `{"name":"Test User","email":"test@example.com","password":"abc"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Register_Success(t *testing.T) {
	handler, uc := createTestUserHandler(t)

	user := &entity.User{ID: 1, Name: "Test User", Email: "test@example.com", Role: entity.RoleCustomer}
	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "Password123!",
		}).
		Return(user, nil)

	body := `{"name":"Test User","email":"test@example.com","password":"Password123!"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Login_EmptyBody(t *testing.T) {
	handler, _ := createTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/login", "")

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUserHandler_Update_EmptyBody(t *testing.T) {
	handler, uc := createTestUserHandler(t)

	user := &entity.User{ID: 4, Name: "Unchanged", Role: entity.RoleCustomer}
	uc.EXPECT().
		Update(mock.Anything, uint(4), &usecase.UpdateUserInput{}).
		Return(user, nil)

	c, rec := newTestContext(http.MethodPatch, "/users/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	asActor(c, 1, entity.RoleAdmin)

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_Refresh_Success(t *testing.T) {
	handler, uc := createTestUserHandler(t)

	user := &entity.User{ID: 8, Email: "test@example.com", Role: entity.RoleCustomer, IsActive: true}
	uc.EXPECT().
		Refresh(mock.Anything, "old_refresh_token").
		Return(&usecase.LoginOutput{
			AccessToken:  "new_access_token",
			RefreshToken: "new_refresh_token",
			User:         user,
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/refresh", `{"refreshToken":"old_refresh_token"}`)

	err := handler.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new_access_token")
	assert.Contains(t, rec.Body.String(), "new_refresh_token")
}

func TestUserHandler_Refresh_MissingToken(t *testing.T) {
	handler, _ := createTestUserHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/refresh", `{}`)

	err := handler.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}
