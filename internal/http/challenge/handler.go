package challenge

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/challenge"
	"github.com/ndhoang/tuipay/internal/http/api"
)

type Handler struct {
	svc *challenge.Service
}

func NewHandler(svc *challenge.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/verify", h.verify)
	r.Post("/expire", h.expire)
}

type createRequest struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

type createResponse struct {
	Code             string `json:"code"`
	ExpiresInSeconds int64  `json:"expires_in_seconds"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	if req.TransactionID == uuid.Nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "transaction_id is required")
		return
	}

	ch, err := h.svc.Create(r.Context(), req.TransactionID)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	api.JSON(w, http.StatusCreated, createResponse{
		Code:             ch.Code,
		ExpiresInSeconds: int64(h.svc.TTL().Seconds()),
	})
}

type verifyRequest struct {
	Code string `json:"code"`
}

type verifyResponse struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	transactionID, err := h.svc.VerifyAndConsume(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, challenge.ErrInvalidCode) {
			api.Error(w, http.StatusBadRequest, api.CodeInvalidOrExpiredCode, "code is invalid or expired")
			return
		}

		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")

		return
	}

	api.JSON(w, http.StatusOK, verifyResponse{TransactionID: transactionID})
}

type expireRequest struct {
	TransactionID uuid.UUID `json:"transaction_id"`
}

func (h *Handler) expire(w http.ResponseWriter, r *http.Request) {
	var req expireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	if err := h.svc.ExpireByTransaction(r.Context(), req.TransactionID); err != nil {
		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
