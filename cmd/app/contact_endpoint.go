package main

import (
	"net/http"
	"strconv"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

func registerContactRoutes(g *echo.Group, cs *services.ContactService) {
	p := g.Group("/contact")

	p.POST("", func(c echo.Context) error {
		req := new(contactRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		id, err := cs.Submit(c.Request().Context(), &model.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"message_id": id})
	})

	adm := p.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)

	adm.GET("", func(c echo.Context) error {
		msgs, err := cs.List(c.Request().Context(), c.QueryParam("status"))
		if err != nil {
			return jsonError(c, err)
		}
		if msgs == nil {
			msgs = []model.ContactMessage{}
		}
		return c.JSON(http.StatusOK, msgs)
	})

	adm.PUT("/:id/assign", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid message id")
		}
		if err := cs.Assign(c.Request().Context(), id, claims.Email); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "assigned"})
	})

	adm.PUT("/:id/close", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid message id")
		}
		if err := cs.Close(c.Request().Context(), id); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "closed"})
	})
}
