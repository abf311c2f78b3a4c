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

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keygate/internal/usecase"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) *usecase.Result {
	return m.Called(ctx, input).Get(0).(*usecase.Result)
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) *usecase.Result {
	return m.Called(ctx, input).Get(0).(*usecase.Result)
}

func newTestHandler(uc usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postJSON(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSignIn_EnvelopeStatusDrivesHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		result *usecase.Result
	}{
		{name: "success", result: usecase.NewResult(http.StatusOK, "User successfully signed in", nil)},
		{name: "rejected", result: usecase.NewResult(http.StatusBadRequest, "Entered Email or Password is Incorrect", nil)},
		{name: "store down", result: usecase.NewResult(http.StatusInternalServerError, "Error in getting the user", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockAuthUsecase)
			uc.On("SignIn", mock.Anything, mock.Anything).Return(tt.result)

			c, rec := postJSON(`{"email":"a@b.com","password":"longenough"}`)
			require.NoError(t, newTestHandler(uc).SignIn(c))

			assert.Equal(t, tt.result.Status, rec.Code)

			var envelope usecase.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.result.Status, envelope.Status)
			assert.Equal(t, tt.result.Message, envelope.Message)
		})
	}
}

func TestSignIn_BindsRequestBody(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("SignIn", mock.Anything, &usecase.SignInInput{Email: "a@b.com", Password: "longenough"}).
		Return(usecase.NewResult(http.StatusOK, "User successfully signed in", nil))

	c, _ := postJSON(`{"email":"a@b.com","password":"longenough"}`)
	require.NoError(t, newTestHandler(uc).SignIn(c))

	uc.AssertExpectations(t)
}

func TestSignUp_Success(t *testing.T) {
	uc := new(mockAuthUsecase)
	uc.On("Register", mock.Anything, mock.Anything).
		Return(usecase.NewResult(http.StatusCreated, "User created successfully", nil))

	c, rec := postJSON(`{"first_name":"Ada","last_name":"Lovelace","birthday":"1990-12-10","phone_number":"+15550100","address":"1 Analytical Way","email":"a@b.com","city":"London","password":"longenough"}`)
	require.NoError(t, newTestHandler(uc).SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSignUp_MalformedBody(t *testing.T) {
	uc := new(mockAuthUsecase)

	c, rec := postJSON(`{not json`)
	require.NoError(t, newTestHandler(uc).SignUp(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestProfile_RequiresIdentityOnContext(t *testing.T) {
	c, rec := postJSON(``)
	require.NoError(t, newTestHandler(new(mockAuthUsecase)).Profile(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
