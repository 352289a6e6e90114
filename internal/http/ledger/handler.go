package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}/deduct", h.deduct)
}

type accountResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Balance  int64     `json:"balance"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "invalid id")
		return
	}

	acc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, accountResponse{
		ID:       acc.ID,
		Email:    acc.Email,
		FullName: acc.FullName,
		Balance:  acc.Balance,
	})
}

type deductRequest struct {
	Amount     int64  `json:"amount"`
	ReceiptRef string `json:"receipt_ref"`
}

type deductResponse struct {
	NewBalance int64 `json:"new_balance"`
}

func (h *Handler) deduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "invalid id")
		return
	}

	var req deductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	newBalance, err := h.svc.Deduct(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, deductResponse{NewBalance: newBalance})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		api.Error(w, http.StatusNotFound, api.CodeAccountNotFound, "account not found")
	case errors.Is(err, ledger.ErrInsufficientBalance):
		api.Error(w, http.StatusBadRequest, api.CodeInsufficientBalance, "insufficient balance")
	case errors.Is(err, ledger.ErrInvalidAmount):
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "amount must be positive")
	default:
		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
	}
}
