package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// 画面フォームのPOSTは同じホストからだけ受ける。
// Originが無いリクエスト（curl等）は通す。
func SameOriginForm() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost {
				return next(c)
			}

			origin := req.Header.Get(echo.HeaderOrigin)
			if origin == "" || origin == "null" {
				return next(c)
			}

			u, err := url.Parse(origin)
			if err != nil || u.Host != req.Host {
				return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden origin"})
			}

			return next(c)
		}
	}
}
