package main

import (
	"net/http"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type updateProfileRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func registerProfileRoutes(g *echo.Group, ps *services.ProfileService) {
	p := g.Group("/profile")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		u, err := ps.Get(c.Request().Context(), claims.Email)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, u)
	})

	p.PUT("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if req.Name == "" {
			return badRequest(c, "name is required")
		}
		u, err := ps.Update(c.Request().Context(), claims.Email, req.Name, req.Phone, req.Address)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, u)
	})
}
