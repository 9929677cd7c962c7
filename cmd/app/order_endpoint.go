package main

import (
	"net/http"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type placeOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerPhone   string `json:"customer_phone"`
	ShippingAddress string `json:"shipping_address"`
	CouponCode      string `json:"coupon_code,omitempty"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")

	// Place order. Identity comes from the token when present, else from
	// customer_email in the body.
	p.POST("", func(c echo.Context) error {
		req := new(placeOrderRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}

		email := req.CustomerEmail
		if claims := middleware.TryGetClaimsFromAuthHeader(c); claims != nil {
			email = claims.Email
		}
		if email == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"code": "unauthorized", "message": "no customer identity"})
		}
		if req.CustomerName == "" || req.CustomerPhone == "" || req.ShippingAddress == "" {
			return badRequest(c, "customer_name, customer_phone and shipping_address are required")
		}

		result, err := os.PlaceOrder(c.Request().Context(), services.PlaceOrderInput{
			CustomerEmail:   email,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			CouponCode:      req.CouponCode,
		})
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusCreated, map[string]interface{}{
			"order_number":     result.OrderNumber,
			"order_numbers":    result.OrderNumbers,
			"upi_reference_id": result.UPIReferenceID,
			"order_amount":     result.OrderAmount,
			"subtotal":         result.Subtotal,
			"discount":         result.Discount,
			"shipping_fee":     result.ShippingFee,
			"applied_coupon":   result.AppliedCoupon,
			"message":          "Order placed successfully",
		})
	})

	auth := p.Group("", middleware.JWTMiddleware())

	// my order history
	auth.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := os.ListByCustomer(c.Request().Context(), claims.Email)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, orders)
	})

	// one order with its payment record
	auth.GET("/:number", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		lines, payment, err := os.GetByNumber(c.Request().Context(), claims.Email, c.Param("number"), claims.Role == "admin")
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"lines": lines, "payment": payment})
	})

	// admin fulfillment transition
	adm := p.Group("", middleware.JWTMiddleware(), middleware.AdminOnly)
	adm.PUT("/:number/status", func(c echo.Context) error {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "invalid request")
		}
		if err := os.UpdateStatus(c.Request().Context(), c.Param("number"), req.Status); err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
