// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/mock"
	"github.com/MKhiriev/refgame/internal/service"
	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/internal/utils"
	"github.com/MKhiriev/refgame/models"
)

const testRunID = "5f2b9a34-0c61-4c5e-9d0f-2a3b4c5d6e7f"

// authedRequest attaches the user id the auth middleware would have stored.
func authedRequest(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// routedRequest runs the request through a chi route so URL parameters
// resolve inside the handler.
func routedRequest(t *testing.T, h *Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	// ParseToken backs the auth middleware on every routed request.
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func uploadableRun() models.Run {
	return models.Run{
		RunID:  testRunID,
		Name:   "symbolic-default",
		Status: models.RunFinished,
	}
}

// ─────────────────────────────────────────────
// saveRun
// ─────────────────────────────────────────────

func TestSaveRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.runs.EXPECT().
		SaveRun(gomock.Any(), int64(42), gomock.Any()).
		Return(nil)

	body, err := json.Marshal(uploadableRun())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/runs", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.saveRun(rec, authedRequest(req, 42))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSaveRun_ErrorMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate run", store.ErrRunAlreadyExists, http.StatusConflict},
		{"non-terminal run", service.ErrRunNotFinished, http.StatusBadRequest},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, ctrl)
			mocks.runs.EXPECT().
				SaveRun(gomock.Any(), int64(42), gomock.Any()).
				Return(tt.err)

			body, err := json.Marshal(uploadableRun())
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/runs", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.saveRun(rec, authedRequest(req, 42))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSaveRun_NoUserInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/runs", bytes.NewReader(nil))
	rec := httptest.NewRecorder()

	h.saveRun(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listRuns
// ─────────────────────────────────────────────

func TestListRuns_FilterFromQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.runs.EXPECT().
		ListRuns(gomock.Any(), int64(42), store.RunFilter{Status: models.RunFinished, Limit: 5}).
		Return([]models.RunListItem{{RunID: testRunID, Name: "symbolic-default"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/runs?status=finished&limit=5", nil)
	rec := httptest.NewRecorder()

	h.listRuns(rec, authedRequest(req, 42))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []models.RunListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, testRunID, items[0].RunID)
}

func TestListRuns_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/runs?limit=many", nil)
	rec := httptest.NewRecorder()

	h.listRuns(rec, authedRequest(req, 42))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// routed reads: URL parameters and auth middleware
// ─────────────────────────────────────────────

func TestGetRun_Routed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: 42}, nil)
	mocks.runs.EXPECT().
		GetRun(gomock.Any(), int64(42), testRunID).
		Return(uploadableRun(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+testRunID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := routedRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var run models.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, testRunID, run.RunID)
}

func TestGetRun_ForeignRunHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: 99}, nil)
	mocks.runs.EXPECT().
		GetRun(gomock.Any(), int64(99), testRunID).
		Return(models.Run{}, store.ErrRunNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+testRunID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := routedRequest(t, h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEpisodes_Routed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: 42}, nil)
	mocks.runs.EXPECT().
		GetEpisodes(gomock.Any(), int64(42), testRunID, models.PhaseTesting).
		Return([]models.Episode{{Phase: models.PhaseTesting, Reward: 1}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/"+testRunID+"/episodes?phase=testing", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := routedRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var batch models.EpisodeBatchUpload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))
	require.Len(t, batch.Episodes, 1)
	assert.Equal(t, 1, batch.Episodes[0].Reward)
}

func TestRoutes_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := routedRequest(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// saveEpisodes with body signature
// ─────────────────────────────────────────────

func TestSaveEpisodes_SignedUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const hashKey = "upload-key"
	utils.InitHasherPool(hashKey)

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
	h := NewHandler(svcs, hashKey, logger.Nop())

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: 42}, nil).
		Times(2)

	body, err := json.Marshal(models.EpisodeBatchUpload{
		Episodes: []models.Episode{{Phase: models.PhaseTraining, Epoch: 1, Batch: 1}},
	})
	require.NoError(t, err)

	t.Run("valid signature passes", func(t *testing.T) {
		mocks.runs.EXPECT().
			SaveEpisodes(gomock.Any(), int64(42), testRunID, gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/runs/"+testRunID+"/episodes", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer valid-token")
		req.Header.Set(hashHeader, hex.EncodeToString(utils.Hash(body)))

		rec := routedRequest(t, h, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("tampered body is rejected", func(t *testing.T) {
		tampered := bytes.Replace(body, []byte(`"reward":0`), []byte(`"reward":1`), 1)

		req := httptest.NewRequest(http.MethodPost, "/api/runs/"+testRunID+"/episodes", bytes.NewReader(tampered))
		req.Header.Set("Authorization", "Bearer valid-token")
		req.Header.Set(hashHeader, hex.EncodeToString(utils.Hash(body)))

		rec := routedRequest(t, h, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// ─────────────────────────────────────────────
// version and method hiding
// ─────────────────────────────────────────────

func TestGetBuildInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newTestHandler(t, ctrl)
	mocks.appInfo.EXPECT().
		GetBuildInfo(gomock.Any()).
		Return(models.BuildInfo{Version: "1.2.3"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := routedRequest(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var info models.BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
}

func TestUnsupportedMethodHidesRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodDelete, "/api/version", nil)
	rec := routedRequest(t, h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
