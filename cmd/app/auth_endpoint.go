package main

import (
	"net/http"

	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Phone    *string `json:"phone,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	p := g.Group("/auth")

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if req.Email == "" || req.Name == "" {
			return badRequest(c, "email and name are required")
		}
		u, err := as.Register(c.Request().Context(), req.Email, req.Name, req.Password, req.Phone)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, u)
	})

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		token, u, err := as.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"token": token, "user": u})
	})
}
