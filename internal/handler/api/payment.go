package api

import (
	"io"
	"log/slog"
	"net/http"

	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	maxWebhookBodyBytes = int64(65536)
	signatureHeader     = "Stripe-Signature"
)

type PaymentHandler struct {
	parser commands.PaymentEventParser
	cmds   commands.PaymentCommands
}

func NewPaymentHandler(parser commands.PaymentEventParser, cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{parser: parser, cmds: cmds}
}

// @Summary Payment gateway webhook
// @Description Signed checkout session events; unknown event types are acknowledged
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	event, err := h.parser.ParseEvent(payload, c.GetHeader(signatureHeader))
	if err != nil {
		slog.Warn("rejected payment event", "error", err.Error(), "client_ip", c.ClientIP())
		httperr.AbortWithProblem(c, err, httperr.Problem{
			Status:  http.StatusBadRequest,
			Code:    "INVALID_EVENT",
			Message: "Invalid payment event",
		}, nil)
		return
	}

	if err := h.cmds.HandleEvent(c.Request.Context(), event); err != nil {
		// Non-2xx makes the gateway redeliver.
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
