package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leaflink/storefront/internal/api/metrics"
	"github.com/leaflink/storefront/internal/core/ports"
)

type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentService ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create captures a checkout for the authenticated customer.
//
// @Summary      Capture a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentRequest  true  "Checkout payload"
// @Success      201   {object}  domain.Payment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]ports.CartLineInput, 0, len(req.CartItems))
	for _, l := range req.CartItems {
		lines = append(lines, ports.CartLineInput{
			ItemName: l.ItemName,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	payment, err := h.paymentService.Create(c.Request().Context(), ports.CreatePaymentInput{
		UserID:     user.ID,
		CardHolder: req.CardHolder,
		CardNumber: req.CardNumber,
		TotalPrice: req.TotalPrice,
		CartItems:  lines,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsCapturedTotal.Inc()
	return c.JSON(http.StatusCreated, payment)
}

// List returns every payment record. Admin or manager only.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Success      200  {array}  domain.Payment
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.paymentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  errorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	payment, err := h.paymentService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// UpdateStatus advances the fulfilment state machine. Admin or manager only.
//
// @Summary      Update payment status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Payment id"
// @Param        body  body      updatePaymentStatusRequest  true  "New status"
// @Success      200   {object}  domain.Payment
// @Failure      422   {object}  errorResponse
// @Router       /payments/{id} [put]
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	var req updatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.paymentService.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// @Summary      Delete a payment record
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	if err := h.paymentService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Payment deleted successfully"})
}
