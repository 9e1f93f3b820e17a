package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hearth/pkg/dto"
	"hearth/pkg/middleware"
	"hearth/services/interest/handler"
	"hearth/services/interest/service"
	"hearth/services/match/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const callerID = "3b241101-e2bb-4255-8caf-4136c566a962"

type stubService struct {
	today      time.Time
	listedDate time.Time
	listErr    error
	updateErr  error
	lastUpdate []string
}

func (s *stubService) Today() time.Time { return s.today }

func (s *stubService) ListDailyMatches(_ context.Context, userID string, date time.Time) ([]dto.DailyMatchDTO, error) {
	s.listedDate = date
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []dto.DailyMatchDTO{{ID: "m1", MatchDate: date.Format("2006-01-02"), MyInterest: "pending"}}, nil
}

func (s *stubService) UpdateInterest(_ context.Context, matchID, userID, interest string) (*dto.InterestResponse, error) {
	s.lastUpdate = []string{matchID, userID, interest}
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &dto.InterestResponse{Match: dto.DailyMatchDTO{ID: matchID, MyInterest: interest}}, nil
}

func do(t *testing.T, svc *stubService, method, target, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if withUser {
		req.Header.Set(middleware.HeaderUserID, callerID)
	}

	rec := httptest.NewRecorder()
	NewRouter(handler.NewInterestHandler(svc)).ServeHTTP(rec, req)
	return rec
}

func TestGetDailyMatches(t *testing.T) {
	svc := &stubService{today: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}

	rec := do(t, svc, http.MethodGet, "/matches/daily", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, svc.today, svc.listedDate)

	var matches []dto.DailyMatchDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "2026-03-14", matches[0].MatchDate)

	rec = do(t, svc, http.MethodGet, "/matches/daily?date=2026-03-10", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), svc.listedDate)
}

func TestGetDailyMatchesErrors(t *testing.T) {
	svc := &stubService{}

	assert.Equal(t, http.StatusUnauthorized, do(t, svc, http.MethodGet, "/matches/daily", "", false).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, svc, http.MethodGet, "/matches/daily?date=03-10-2026", "", true).Code)

	svc.listErr = errors.New("db down")
	assert.Equal(t, http.StatusInternalServerError, do(t, svc, http.MethodGet, "/matches/daily", "", true).Code)
}

func TestUpdateInterest(t *testing.T) {
	svc := &stubService{}

	rec := do(t, svc, http.MethodPost, "/matches/m1/interest", `{"interest":"interested"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"m1", callerID, "interested"}, svc.lastUpdate)

	var resp dto.InterestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "interested", resp.Match.MyInterest)
}

func TestUpdateInterestBadRequest(t *testing.T) {
	svc := &stubService{}

	rec := do(t, svc, http.MethodPost, "/matches/m1/interest", `{"interest":"maybe"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "interest must be one of")

	rec = do(t, svc, http.MethodPost, "/matches/m1/interest", `{}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "interest is required")

	rec = do(t, svc, http.MethodPost, "/matches/m1/interest", `{"interest":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Nil(t, svc.lastUpdate)
}

func TestUpdateInterestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("repository.UpdateInterest: %w", repository.ErrMatchNotFound), http.StatusNotFound},
		{fmt.Errorf("repository.UpdateInterest: %w", repository.ErrNotParticipant), http.StatusForbidden},
		{service.ErrInvalidInterest, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		svc := &stubService{updateErr: tc.err}
		rec := do(t, svc, http.MethodPost, "/matches/m1/interest", `{"interest":"not_interested"}`, true)
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}

func TestPreflightWithoutUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/matches/m1/interest", nil)
	req.Header.Set("Origin", "https://app.hearth.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	NewRouter(handler.NewInterestHandler(&stubService{})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
