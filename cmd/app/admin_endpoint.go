package main

import (
	"net/http"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAdminRoutes(g *echo.Group, as *services.AdminService) {
	p := g.Group("/admin")

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		token, err := as.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"token": token})
	})

	adm := p.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)

	adm.GET("/dashboard", func(c echo.Context) error {
		stats, err := as.Dashboard(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, stats)
	})
}
