// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenplay/levelkeeper/models"
)

// bearerFor mints a valid token for the given user through the same auth
// service the router verifies with.
func bearerFor(t *testing.T, m *testMocks, userID int64) string {
	t.Helper()
	token, err := m.auth.CreateToken(context.Background(), models.User{UserID: userID})
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func authedRequest(method, path, body, bearer string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", bearer)
	return req
}

func TestPlayerState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	state := models.PlayerState{
		Progress: []models.ProgressRecord{{
			EntityID: "e1",
			SubKeys:  []models.SubKeyProgress{{SubKey: "easy", HighScore: 80, Passed: true, Attempts: 2}},
		}},
		Subscription: models.SubscriptionSnapshot{IsActive: true, PlanID: "monthly"},
	}
	m.players.EXPECT().PlayerState(gomock.Any(), int64(42)).Return(state, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/player/state", "", bearerFor(t, m, 42)))

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PlayerState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, state, got)
}

func TestPlayerState_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rec := getPath(router, "/api/player/state")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlayerState_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/player/state", "", "Bearer not-a-jwt"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApplyMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	m.players.EXPECT().ApplyMutation(gomock.Any(), int64(42), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, p models.MutationPayload) error {
			assert.Equal(t, "m1", p.ID)
			assert.Equal(t, models.MutationSubKeyResult, p.Kind)
			return nil
		})

	body := `{"id":"m1","kind":"sub_key_result","entity_id":"e1","sub_key":"easy","high_score":80,"passed":true}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/player/mutations", body, bearerFor(t, m, 42)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyMutation_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	// missing mutation id: rejected before the repository is touched
	body := `{"kind":"sub_key_result","entity_id":"e1","sub_key":"easy"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/player/mutations", body, bearerFor(t, m, 42)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyMutation_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/player/mutations", `{broken`, bearerFor(t, m, 42)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// auth middleware header parsing
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
