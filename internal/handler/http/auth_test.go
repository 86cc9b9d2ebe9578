// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/mock"
	"github.com/MKhiriev/refgame/internal/service"
	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type handlerMocks struct {
	auth    *mock.MockAuthService
	runs    *mock.MockRunService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock service mocks. hashKey is empty
// so signature verification stays out of the way unless a test opts in.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, handlerMocks) {
	t.Helper()

	mocks := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		runs:    mock.NewMockRunService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:    mocks.auth,
		RunService:     mocks.runs,
		AppInfoService: mocks.appInfo,
	}
	return NewHandler(svcs, "", logger.Nop()), mocks
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	Login:    "alice",
	Password: "secret",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 200 OK and an Authorization header containing the issued Bearer token.
func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const signedToken = "signed.jwt.token"

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u models.User) (models.User, error) {
			u.UserID = 7
			return u, nil
		})
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(stubToken(signedToken), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_LoginAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const signedToken = "signed.jwt.token"

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Login: "alice"}, nil)
	mocks.auth.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(stubToken(signedToken), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		err  error
	}{
		{"wrong password", service.ErrWrongPassword},
		{"unknown login", store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, ctrl)
			mocks.auth.EXPECT().
				Login(gomock.Any(), gomock.Any()).
				Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestLogin_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("db on fire"))

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
