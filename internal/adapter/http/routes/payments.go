package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Telli/betts-ctis-sub020/internal/adapter/http/handlers"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.InitiatePayment)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/refund", paymentHandler.RefundPayment)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/:provider", webhookHandler.ReceiveWebhook)
	}
}
