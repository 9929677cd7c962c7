package main

import (
	"net/http"
	"strconv"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/pricing"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductName    string                `json:"product_name"`
	Quantity       int                   `json:"quantity"`
	Customization  pricing.Customization `json:"customization"`
	CustomPhotoURL *string               `json:"custom_photo_url,omitempty"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	// GET cart
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.Email)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item (or increment the matching line)
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if req.ProductName == "" {
			return badRequest(c, "product_name is required")
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if err := cs.Add(c.Request().Context(), claims.Email, req.ProductName, req.Quantity, req.Customization, req.CustomPhotoURL); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// UPDATE quantity of one line
	p.PUT("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid cart line id")
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if err := cs.Update(c.Request().Context(), claims.Email, lineID, req.Quantity); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE one line
	p.DELETE("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid cart line id")
		}
		if err := cs.Remove(c.Request().Context(), claims.Email, lineID); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := cs.Clear(c.Request().Context(), claims.Email); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
