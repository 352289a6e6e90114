// Package api holds the JSON envelope shared by the services' HTTP
// surfaces. Error responses carry a stable machine-readable code so callers
// can decide between retrying, restarting the flow, or stopping.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Stable error codes shared by handlers and the service-to-service clients.
const (
	CodeBadRequest             = "bad_request"
	CodeInternal               = "internal_error"
	CodeNoPayableBill          = "no_payable_bill"
	CodeStudentNotFound        = "student_not_found"
	CodeBillNotFound           = "bill_not_found"
	CodeBillAlreadyPaid        = "bill_already_paid"
	CodeAccountNotFound        = "account_not_found"
	CodeInsufficientBalance    = "insufficient_balance"
	CodeInvalidOrExpiredCode   = "invalid_or_expired_code"
	CodeTransactionNotFound    = "transaction_not_found"
	CodeStaleBill              = "stale_bill"
	CodeDownstreamUnavailable  = "downstream_unavailable"
	CodeReconciliationRequired = "reconciliation_required"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Code: code, Message: message})
}
