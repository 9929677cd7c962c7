package main

import (
	"net/http"
	"strconv"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Description     *string `json:"description,omitempty"`
	BasePrice       float64 `json:"base_price"`
	Available       bool    `json:"available"`
	FulfillmentDays int     `json:"fulfillment_days"`
	ImageURL        *string `json:"image_url,omitempty"`
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	p := g.Group("/products")

	p.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		onlyAvailable := c.QueryParam("all") != "true"
		items, err := ps.List(c.Request().Context(), onlyAvailable, limit, offset)
		if err != nil {
			return jsonError(c, err)
		}
		if items == nil {
			items = []model.Product{}
		}
		return c.JSON(http.StatusOK, items)
	})

	p.GET("/:name", func(c echo.Context) error {
		item, err := ps.Get(c.Request().Context(), c.Param("name"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, item)
	})

	// admin catalog management
	adm := p.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)

	adm.POST("", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		prod := productFromRequest(req)
		if err := ps.Create(c.Request().Context(), prod); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusCreated, prod)
	})

	adm.PUT("/:name", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		prod := productFromRequest(req)
		prod.Name = c.Param("name")
		if err := ps.Update(c.Request().Context(), prod); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, prod)
	})

	adm.DELETE("/:name", func(c echo.Context) error {
		if err := ps.Delete(c.Request().Context(), c.Param("name")); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}

func productFromRequest(req *productRequest) *model.Product {
	return &model.Product{
		Name:            req.Name,
		Type:            req.Type,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		Available:       req.Available,
		FulfillmentDays: req.FulfillmentDays,
		ImageURL:        req.ImageURL,
	}
}
