package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID  = "X-User-ID"
	ContextUserID = "user_id"
)

// RequireUserID 게이트웨이가 넣어 준 X-User-ID 헤더를 검증해 컨텍스트에 저장한다
func RequireUserID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// preflight 는 헤더 없이 통과
			if c.Request().Method == http.MethodOptions {
				return next(c)
			}

			userIDStr := c.Request().Header.Get(HeaderUserID)
			if userIDStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "User ID is required")
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid User ID format")
			}

			c.Set(ContextUserID, userID.String())
			return next(c)
		}
	}
}

// UserID RequireUserID 가 저장한 유저 ID
func UserID(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	return userID
}
