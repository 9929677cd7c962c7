package main

import (
	"net/http"
	"strconv"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createReviewRequest struct {
	ProductName string  `json:"product_name"`
	Rating      int     `json:"rating"`
	Comment     *string `json:"comment,omitempty"`
}

func registerReviewRoutes(g *echo.Group, rs *services.ReviewService) {
	p := g.Group("/reviews")

	p.GET("/product/:name", func(c echo.Context) error {
		reviews, err := rs.ListByProduct(c.Request().Context(), c.Param("name"))
		if err != nil {
			return jsonError(c, err)
		}
		if reviews == nil {
			reviews = []model.ProductReview{}
		}
		return c.JSON(http.StatusOK, reviews)
	})

	auth := p.Group("", middleware.JWTMiddleware())

	auth.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(createReviewRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		id, err := rs.Create(c.Request().Context(), &model.ProductReview{
			ProductName:   req.ProductName,
			CustomerEmail: claims.Email,
			CustomerName:  &claims.Name,
			Rating:        req.Rating,
			Comment:       req.Comment,
		})
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"review_id": id})
	})

	auth.DELETE("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid review id")
		}
		if err := rs.Delete(c.Request().Context(), id, claims.Email); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
