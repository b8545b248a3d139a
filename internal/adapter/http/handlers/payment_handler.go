package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Telli/betts-ctis-sub020/internal/adapter/http/dto/request"
	response "github.com/Telli/betts-ctis-sub020/internal/adapter/http/dto/response"
	"github.com/Telli/betts-ctis-sub020/internal/domain/entities"
	"github.com/Telli/betts-ctis-sub020/internal/infrastructure/payments"
	"github.com/Telli/betts-ctis-sub020/internal/usecase"
	"github.com/Telli/betts-ctis-sub020/pkg"
)

// PaymentHandler handles HTTP requests for the payment lifecycle.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// InitiatePayment starts a transaction with the requested provider.
//
// @Summary  Initiate a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    payment body request.PaymentInitiateRequest true "payment"
// @Success  200 {object} response.PaymentResponse
// @Router   /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req request.PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid initiate payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	provider, ok := entities.ParseProvider(req.Provider)
	if !ok {
		log.Printf("[payment][handler] unknown provider provider=%s", req.Provider)
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Unknown payment provider", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.InitiatePayment(c.Request.Context(), usecase.InitiatePaymentInput{
		Provider:    provider,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		PayerPhone:  req.PayerPhone,
	})
	if err != nil {
		log.Printf("[payment][handler] initiate failed provider=%s err=%v", provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate success payment_id=%s status=%s", created.PaymentID, created.Status)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(created))
}

// GetPayment returns one ledger row by payment id.
//
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Success  200 {object} response.PaymentResponse
// @Router   /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	tx, err := h.usecase.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

// RefundPayment triggers the operator refund for a completed payment.
//
// @Summary  Refund a payment
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Success  200 {object} response.PaymentResponse
// @Router   /payments/{payment_id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] refund start payment_id=%s", paymentID)

	tx, err := h.usecase.RefundPayment(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] refund failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] refund success payment_id=%s", tx.PaymentID)

	c.JSON(http.StatusOK, response.FromPaymentTransaction(tx))
}

func mapPaymentError(err error) *pkg.DomainError {
	var notRegistered *payments.GatewayNotRegisteredError
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCurrency):
		return pkg.NewDomainErrorSimple("INVALID_CURRENCY", "Currency must be a 3-letter code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotRefundable):
		return pkg.NewDomainErrorSimple("NOT_REFUNDABLE", "Only completed payments can be refunded", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayDeclined):
		return pkg.NewDomainErrorSimple("GATEWAY_DECLINED", "Payment declined by provider", http.StatusUnprocessableEntity)
	case errors.As(err, &notRegistered):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	}
	return pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
}
