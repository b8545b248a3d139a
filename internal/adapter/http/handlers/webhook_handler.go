package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/Telli/betts-ctis-sub020/internal/adapter/http/dto/response"
	"github.com/Telli/betts-ctis-sub020/internal/usecase"
	"github.com/Telli/betts-ctis-sub020/pkg"
)

// WebhookHandler receives asynchronous provider callbacks.
//
// A 2xx answer tells the provider to stop retrying; duplicates and payloads
// that could not be applied still get a 2xx because retrying cannot fix them.
// 5xx is reserved for processor-internal failures where a retry can help.

type WebhookHandler struct {
	processor usecase.IWebhookProcessorUseCase
}

func NewWebhookHandler(p usecase.IWebhookProcessorUseCase) *WebhookHandler {
	return &WebhookHandler{processor: p}
}

// ReceiveWebhook ingests one provider callback.
//
// @Summary  Receive a provider webhook
// @Tags     webhooks
// @Accept   json,xml
// @Produce  json
// @Param    provider path string true "provider name"
// @Success  200 {object} response.WebhookAckResponse
// @Router   /webhooks/{provider} [post]
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	providerName := c.Param("provider")

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed provider=%s err=%v", providerName, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Could not read request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.GetHeader(name)
	}

	accepted, err := h.processor.Process(c.Request.Context(), providerName, string(raw), headers)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownWebhookProvider):
			appErr := pkg.NewDomainErrorSimple("UNKNOWN_PROVIDER", "Unknown payment provider", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, usecase.ErrEmptyWebhookPayload):
			appErr := pkg.NewDomainErrorSimple("EMPTY_PAYLOAD", "Empty webhook payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			// 5xx solicits a provider retry.
			log.Printf("[webhook][handler] process failed provider=%s err=%v", providerName, err)
			appErr := pkg.NewDomainErrorSimple("WEBHOOK_FAILED", "Webhook processing failed", http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}
	if !accepted {
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_FAILED", "Webhook processing failed", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "accepted"})
}
