package api

import (
	"errors"
	"log/slog"
	"net/http"

	"commission-tracker/internal/domain/purchase"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errNotVendor = errs.New("principal has no vendor")

type problemRule struct {
	target  error
	problem httperr.Problem
}

// Order matters: the first matching sentinel decides the response.
var problemRules = []problemRule{
	{commands.ErrConsumedRace, httperr.Problem{Status: http.StatusGone, Code: "LINK_CONSUMED", Message: "This purchase link has just been used"}},
	{commands.ErrLinkInvalid, httperr.Problem{Status: http.StatusGone, Code: "LINK_INVALID", Message: "Purchase link is invalid or already used"}},
	{purchase.ErrValidation, httperr.Problem{Status: http.StatusUnprocessableEntity, Code: "VALIDATION_ERROR", Message: "Invalid input"}},
	{commands.ErrGatewayFailure, httperr.Problem{Status: http.StatusBadGateway, Code: "GATEWAY_ERROR", Message: "Payment provider unavailable, please retry", Retryable: true}},
	{commands.ErrPaymentFailed, httperr.Problem{Status: http.StatusBadGateway, Code: "GATEWAY_ERROR", Message: "Payment was not completed, please retry", Retryable: true}},
	{commands.ErrStoreFailure, httperr.Problem{Status: http.StatusServiceUnavailable, Code: "STORE_FAILURE", Message: "Could not save your data, please retry", Retryable: true}},
	{commands.ErrAlreadyPaid, httperr.Problem{Status: http.StatusConflict, Code: "ALREADY_PAID", Message: "This purchase is already paid"}},
	{shared.ErrFlowBusy, httperr.Problem{Status: http.StatusConflict, Code: "STEP_IN_PROGRESS", Message: "Another request for this purchase is in progress", Retryable: true}},
	{purchase.ErrInvalidTransition, httperr.Problem{Status: http.StatusConflict, Code: "INVALID_TRANSITION", Message: "This step is not available now"}},
	{purchase.ErrCheckoutNotStarted, httperr.Problem{Status: http.StatusConflict, Code: "INVALID_TRANSITION", Message: "Payment has not been started"}},
	{shared.ErrFlowNotFound, httperr.Problem{Status: http.StatusNotFound, Code: "FLOW_NOT_FOUND", Message: "Purchase session not found or expired"}},

	{commands.ErrInvalidCredentials, httperr.Problem{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}},
	{commands.ErrUserNotFound, httperr.Problem{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}},
	{commands.ErrAuthenticationFailed, httperr.Problem{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}},
	{commands.ErrTokenValidation, httperr.Problem{Status: http.StatusUnauthorized, Code: "INVALID_TOKEN", Message: "Invalid or expired token"}},
	{commands.ErrUserInactive, httperr.Problem{Status: http.StatusForbidden, Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"}},
	{queries.ErrUserInactive, httperr.Problem{Status: http.StatusForbidden, Code: "ACCOUNT_INACTIVE", Message: "Account is inactive"}},
	{queries.ErrUserNotFound, httperr.Problem{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "User not found"}},
	{usecase.ErrSessionInactive, httperr.Problem{Status: http.StatusUnauthorized, Code: "INVALID_TOKEN", Message: "Invalid or expired token"}},

	{commands.ErrEmailTaken, httperr.Problem{Status: http.StatusConflict, Code: "EMAIL_TAKEN", Message: "Email already registered"}},
	{commands.ErrSerialExists, httperr.Problem{Status: http.StatusConflict, Code: "SERIAL_EXISTS", Message: "Serial number already registered"}},
	{errs.ErrVendorNotFound, httperr.Problem{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Vendor not found"}},
	{errs.ErrPurchaseNotFound, httperr.Problem{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Purchase not found"}},
	{errs.ErrClientNotFound, httperr.Problem{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: "Client not found"}},
	{errs.ErrDomainValidation, httperr.Problem{Status: http.StatusUnprocessableEntity, Code: "VALIDATION_ERROR", Message: "Invalid input"}},
}

var internalProblem = httperr.Problem{Status: http.StatusInternalServerError, Code: "INTERNAL", Message: "Internal server error"}

func problemFor(err error) httperr.Problem {
	for _, r := range problemRules {
		if errors.Is(err, r.target) {
			return r.problem
		}
	}
	return internalProblem
}

// abortWithUseCaseError renders a use-case error. Validation errors carry their field messages.
func abortWithUseCaseError(c *gin.Context, err error) {
	p := problemFor(err)
	if p.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error())
	}

	var detail any
	var verr *purchase.ValidationError
	if errors.As(err, &verr) {
		detail = gin.H{"fields": verr.Fields}
	}
	httperr.AbortWithProblem(c, err, p, detail)
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithProblem(c, err, httperr.Problem{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Invalid request format",
	}, nil)
}
