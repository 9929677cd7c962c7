package main

import (
	"net/http"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type wishlistRequest struct {
	ProductName string `json:"product_name"`
}

func registerWishlistRoutes(g *echo.Group, ws *services.WishlistService) {
	p := g.Group("/wishlist")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		items, err := ws.List(c.Request().Context(), claims.Email)
		if err != nil {
			return jsonError(c, err)
		}
		if items == nil {
			items = []model.WishlistItem{}
		}
		return c.JSON(http.StatusOK, items)
	})

	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(wishlistRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if req.ProductName == "" {
			return badRequest(c, "product_name is required")
		}
		if err := ws.Add(c.Request().Context(), claims.Email, req.ProductName); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	p.DELETE("/:name", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if err := ws.Remove(c.Request().Context(), claims.Email, c.Param("name")); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})
}
