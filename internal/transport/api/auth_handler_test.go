package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/logger"
	"github.com/fsdevblog/groph-market/internal/service"
	"github.com/fsdevblog/groph-market/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router          http.Handler
	mockAuthService *mocks.MockAuthServicer
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockAuthService = mocks.NewMockAuthServicer(mockCtrl)

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		AuthService:  s.mockAuthService,
		JWTSecretKey: []byte("super secret key"),
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	username := gofakeit.Username()
	password := gofakeit.Password(true, true, true, false, false, 12)

	user := domain.User{
		ID:                1,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Username:          username,
		EncryptedPassword: "hash",
		Balance:           decimal.NewFromInt(100),
	}

	s.mockAuthService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: username, Password: password}).
		Return(&user, "jwt-token", nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    AuthRouteGroup + LoginRoute,
		Body:   bytes.NewBufferString(fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))

	var body struct {
		Message string       `json:"message"`
		User    UserResponse `json:"user"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Login successful", body.Message)
	s.Equal(user.ID, body.User.ID)
	s.Equal(username, body.User.Username)
	s.InDelta(100, body.User.Balance, 0.001)
}

// TestLoginInvalidCredentials проверяет, что несуществующий юзернейм и неверный пароль
// дают байт-в-байт одинаковый ответ.
func (s *AuthHandlerTestSuite) TestLoginInvalidCredentials() {
	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", fmt.Errorf("logging in user: %w", domain.ErrRecordNotFound))
	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch))

	var bodies []string
	for range 2 {
		resp, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    AuthRouteGroup + LoginRoute,
			Body:   bytes.NewBufferString(`{"username":"someone","password":"something"}`),
		})
		s.Require().NoError(err)

		s.Equal(http.StatusUnauthorized, resp.StatusCode)

		raw := new(bytes.Buffer)
		_, readErr := raw.ReadFrom(resp.Body)
		s.Require().NoError(readErr)
		s.Require().NoError(resp.Body.Close())
		bodies = append(bodies, raw.String())
	}

	s.Equal(bodies[0], bodies[1])
	s.Contains(bodies[0], "Invalid username or password")
}

func (s *AuthHandlerTestSuite) TestLoginServerError() {
	s.mockAuthService.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, "", domain.ErrUnknown)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    AuthRouteGroup + LoginRoute,
		Body:   bytes.NewBufferString(`{"username":"someone","password":"something"}`),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)

	// детали внутренней ошибки наружу выходить не должны.
	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Server error", body["message"])
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	s.mockAuthService.EXPECT().
		ChangePassword(gomock.Any(), service.ChangePasswordArgs{
			UserID:      1,
			OldPassword: "old password",
			NewPassword: "new password",
		}).
		Return(nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    AuthRouteGroup + ChangePasswordRoute,
		Body:   bytes.NewBufferString(`{"userId":1,"oldPassword":"old password","newPassword":"new password"}`),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("Password updated successfully", body["message"])
}

func (s *AuthHandlerTestSuite) TestChangePasswordFailures() {
	cases := []struct {
		name        string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing user",
			svcErr:      fmt.Errorf("changing password: %w", domain.ErrRecordNotFound),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid user",
		},
		{
			name:        "wrong old password",
			svcErr:      fmt.Errorf("changing password: %w", domain.ErrPasswordMissMatch),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid old password",
		},
		{
			name:        "unexpected error",
			svcErr:      domain.ErrUnknown,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockAuthService.EXPECT().
				ChangePassword(gomock.Any(), gomock.Any()).
				Return(t.svcErr)

			resp, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    AuthRouteGroup + ChangePasswordRoute,
				Body:   bytes.NewBufferString(`{"userId":1,"oldPassword":"old","newPassword":"new password"}`),
			})
			s.Require().NoError(err)
			defer func() { _ = resp.Body.Close() }()

			s.Equal(t.wantStatus, resp.StatusCode)

			var body map[string]string
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
			s.Equal(t.wantMessage, body["message"])
		})
	}
}

func (s *AuthHandlerTestSuite) TestChangePasswordBindError() {
	s.mockAuthService.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Times(0)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    AuthRouteGroup + ChangePasswordRoute,
		Body:   bytes.NewBufferString(`{"userId":1,"oldPassword":"old"}`),
	})
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
