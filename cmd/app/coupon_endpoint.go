package main

import (
	"net/http"
	"time"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createCouponRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	UsageLimit    *int       `json:"usage_limit,omitempty"`
	IsActive      bool       `json:"is_active"`
}

func registerCouponRoutes(g *echo.Group, cs *services.CouponService) {
	p := g.Group("/coupons")

	// advisory check used by the checkout page; redemption happens at order
	// placement
	p.GET("/:code/preview", func(c echo.Context) error {
		coupon, err := cs.Preview(c.Request().Context(), c.Param("code"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"code":           coupon.Code,
			"discount_type":  coupon.DiscountType,
			"discount_value": coupon.DiscountValue,
		})
	})

	adm := p.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)

	adm.POST("", func(c echo.Context) error {
		req := new(createCouponRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		coupon := &model.Coupon{
			Code:          req.Code,
			DiscountType:  req.DiscountType,
			DiscountValue: req.DiscountValue,
			ExpiryDate:    req.ExpiryDate,
			UsageLimit:    req.UsageLimit,
			IsActive:      req.IsActive,
		}
		if err := cs.Create(c.Request().Context(), coupon); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusCreated, coupon)
	})

	adm.GET("", func(c echo.Context) error {
		coupons, err := cs.List(c.Request().Context())
		if err != nil {
			return jsonError(c, err)
		}
		if coupons == nil {
			coupons = []model.Coupon{}
		}
		return c.JSON(http.StatusOK, coupons)
	})

	adm.PUT("/:code/active", func(c echo.Context) error {
		var req struct {
			Active bool `json:"active"`
		}
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request")
		}
		if err := cs.SetActive(c.Request().Context(), c.Param("code"), req.Active); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	adm.DELETE("/:code", func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("code")); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
