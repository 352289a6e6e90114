package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/auth"
	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/challenge", h.requestChallenge)
	r.Post("/confirm", h.confirm)
	r.Post("/{id}/cancel", h.cancel)
	r.Get("/history", h.history)
}

type requestChallengeRequest struct {
	StudentRef string `json:"student_ref"`
}

func (h *Handler) requestChallenge(w http.ResponseWriter, r *http.Request) {
	payerID, ok := auth.PayerID(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, api.CodeBadRequest, "missing payer identity")
		return
	}

	var req requestChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	if req.StudentRef == "" {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "student_ref is required")
		return
	}

	result, err := h.svc.RequestChallenge(r.Context(), payerID, req.StudentRef)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusCreated, toChallengeResponse(result))
}

type confirmRequest struct {
	Code       string `json:"code"`
	StudentRef string `json:"student_ref"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	payerID, ok := auth.PayerID(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, api.CodeBadRequest, "missing payer identity")
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	if req.Code == "" || req.StudentRef == "" {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "code and student_ref are required")
		return
	}

	result, err := h.svc.ConfirmPayment(r.Context(), payerID, req.Code, req.StudentRef)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toConfirmResponse(result))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	payerID, ok := auth.PayerID(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, api.CodeBadRequest, "missing payer identity")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "invalid id")
		return
	}

	if err := h.svc.Cancel(r.Context(), payerID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	payerID, ok := auth.PayerID(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, api.CodeBadRequest, "missing payer identity")
		return
	}

	txs, err := h.svc.History(r.Context(), payerID)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toHistoryResponse(txs))
}

// writeError maps each saga error kind to its stable response. Clients rely
// on the code to decide between retrying, requesting a fresh challenge, or
// stopping; operators rely on reconciliation_required never collapsing into a
// generic failure.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payment.ErrNoPayableBill):
		api.Error(w, http.StatusNotFound, api.CodeNoPayableBill, "no payable bill found")
	case errors.Is(err, payment.ErrInvalidOrExpiredCode):
		api.Error(w, http.StatusBadRequest, api.CodeInvalidOrExpiredCode, "code is invalid or expired")
	case errors.Is(err, payment.ErrTransactionNotFound):
		api.Error(w, http.StatusNotFound, api.CodeTransactionNotFound, "transaction not found or already processed")
	case errors.Is(err, payment.ErrStaleBill):
		api.Error(w, http.StatusConflict, api.CodeStaleBill, "the payable bill changed; request a new code")
	case errors.Is(err, payment.ErrInsufficientBalance):
		api.Error(w, http.StatusBadRequest, api.CodeInsufficientBalance, "balance does not cover the bill")
	case errors.Is(err, payment.ErrPartialFailure):
		api.Error(w, http.StatusInternalServerError, api.CodeReconciliationRequired,
			"payment partially applied; contact support before retrying")
	case errors.Is(err, payment.ErrDownstreamUnavailable):
		api.Error(w, http.StatusServiceUnavailable, api.CodeDownstreamUnavailable, "a backing service is unavailable; retry later")
	default:
		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
	}
}
