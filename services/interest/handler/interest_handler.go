package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hearth/pkg/dto"
	"hearth/pkg/helper"
	"hearth/pkg/middleware"
	"hearth/services/interest/service"
	"hearth/services/match/repository"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type InterestService interface {
	Today() time.Time
	ListDailyMatches(ctx context.Context, userID string, date time.Time) ([]dto.DailyMatchDTO, error)
	UpdateInterest(ctx context.Context, matchID, userID, interest string) (*dto.InterestResponse, error)
}

type InterestHandler struct {
	interestService InterestService
	validate        *validator.Validate
}

func NewInterestHandler(interestService InterestService) *InterestHandler {
	return &InterestHandler{
		interestService: interestService,
		validate:        validator.New(),
	}
}

// 오늘(또는 date 쿼리) 매칭 목록 조회
func (h *InterestHandler) GetDailyMatches(c echo.Context) error {
	userID := middleware.UserID(c)

	date := h.interestService.Today()
	if dateStr := c.QueryParam("date"); dateStr != "" {
		parsed, err := helper.ParseDate(dateStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date must be YYYY-MM-DD"})
		}
		date = parsed
	}

	matches, err := h.interestService.ListDailyMatches(c.Request().Context(), userID, date)
	if err != nil {
		c.Logger().Errorf("❌ Failed to list daily matches for %s: %v", userID, err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve daily matches"})
	}

	return c.JSON(http.StatusOK, matches)
}

// 매칭 상대에 대한 관심 표시
func (h *InterestHandler) UpdateInterest(c echo.Context) error {
	userID := middleware.UserID(c)
	matchID := c.Param("id")

	var req dto.InterestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: formatValidationError(err)})
	}

	resp, err := h.interestService.UpdateInterest(c.Request().Context(), matchID, userID, req.Interest)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, resp)
	case errors.Is(err, service.ErrInvalidInterest):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrMatchNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Match not found"})
	case errors.Is(err, repository.ErrNotParticipant):
		return c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "You are not part of this match"})
	default:
		c.Logger().Errorf("❌ Failed to update interest on %s: %v", matchID, err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update interest"})
	}
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, "; ")
}
