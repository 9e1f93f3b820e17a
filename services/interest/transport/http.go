package transport

import (
	"net/http"

	"hearth/services/interest/handler"

	hearthmw "hearth/pkg/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func NewRouter(interestHandler *handler.InterestHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// CORS 설정
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type", hearthmw.HeaderUserID},
		MaxAge:       300,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// 매칭 관련 라우팅 (X-User-ID 필수)
	matches := e.Group("/matches", hearthmw.RequireUserID())
	matches.GET("/daily", interestHandler.GetDailyMatches)
	matches.POST("/:id/interest", interestHandler.UpdateInterest)

	return e
}
