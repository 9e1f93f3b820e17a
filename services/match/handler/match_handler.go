package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"hearth/pkg/dto"
	"hearth/pkg/helper"

	"github.com/go-chi/chi/v5"
)

type DailyMatchGenerator interface {
	GenerateDailyMatches(ctx context.Context) (dto.MatchRunReport, error)
}

// RunReportReader 날짜별 실행 결과 조회, 없으면 nil
type RunReportReader interface {
	GetRunReport(ctx context.Context, date string) (*dto.MatchRunReport, error)
}

type MatchHandler struct {
	generator DailyMatchGenerator
	reports   RunReportReader
}

func NewMatchHandler(generator DailyMatchGenerator, reports RunReportReader) *MatchHandler {
	return &MatchHandler{
		generator: generator,
		reports:   reports,
	}
}

// 데일리 매칭 생성
func (h *MatchHandler) GenerateDailyMatches(w http.ResponseWriter, r *http.Request) {
	// 클라이언트가 끊어도 실행은 끝까지 진행
	ctx := context.WithoutCancel(r.Context())

	report, err := h.generator.GenerateDailyMatches(ctx)
	if err != nil {
		log.Printf("❌ Error in generate-daily-matches: %v", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, dto.GenerateResponse{
		Success:        true,
		MatchesCreated: report.MatchesCreated,
		UsersProcessed: report.UsersProcessed,
		UsersSkipped:   report.UsersSkipped,
		Date:           report.Date,
	})
}

// preflight 헤더 없이 들어온 OPTIONS
func (h *MatchHandler) Options(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// 날짜별 마지막 실행 결과 조회
func (h *MatchHandler) GetRunReport(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := helper.ParseDate(date); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}

	if h.reports == nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "run report not found"})
		return
	}

	report, err := h.reports.GetRunReport(r.Context(), date)
	if err != nil {
		log.Printf("❌ Failed to get run report %s: %v", date, err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to get run report"})
		return
	}
	if report == nil {
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "run report not found"})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *MatchHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
