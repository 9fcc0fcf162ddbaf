package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/domain/service"
	mockSvc "mandoob/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, c, called
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("signed.jwt.token").Return(&service.Claims{UserID: userID, Username: "ahmed"}, nil)

	_, c, called := runAuthenticate(t, tokenSvc, "Bearer signed.jwt.token")

	assert.True(t, called)
	gotID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)
	username, _ := GetUsername(c)
	assert.Equal(t, "ahmed", username)

	ctxID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, userID, ctxID)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockSvc.MockTokenService)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic YWhtZWQ6c2VjcmV0"},
		{name: "empty token", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))
			},
		},
		{
			name:   "token without subject",
			header: "Bearer anonymous",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("anonymous").Return(&service.Claims{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, c, called := runAuthenticate(t, tokenSvc, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			_, ok := GetUserID(c)
			assert.False(t, ok)
		})
	}
}
