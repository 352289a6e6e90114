package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/billing"
	"github.com/ndhoang/tuipay/internal/http/api"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/payable", h.payable)
	r.Post("/{id}/mark-paid", h.markPaid)
	r.Get("/student/{ref}", h.listByStudent)
}

type billResponse struct {
	ID           uuid.UUID      `json:"id"`
	StudentRef   string         `json:"student_ref"`
	StudentName  string         `json:"student_name"`
	Semester     int            `json:"semester"`
	AcademicYear string         `json:"academic_year"`
	Amount       int64          `json:"amount"`
	Status       billing.Status `json:"status"`
	Payable      bool           `json:"payable"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toResponse(b *billing.Bill) billResponse {
	return billResponse{
		ID:           b.ID,
		StudentRef:   b.StudentRef,
		StudentName:  b.StudentName,
		Semester:     b.Semester,
		AcademicYear: b.AcademicYear,
		Amount:       b.Amount,
		Status:       b.Status,
		Payable:      b.Payable,
		CreatedAt:    b.CreatedAt,
	}
}

type payableRequest struct {
	StudentRef string `json:"student_ref"`
}

func (h *Handler) payable(w http.ResponseWriter, r *http.Request) {
	var req payableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, err.Error())
		return
	}

	if req.StudentRef == "" {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "student_ref is required")
		return
	}

	bill, err := h.svc.GetPayable(r.Context(), req.StudentRef)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(bill))
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, api.CodeBadRequest, "invalid id")
		return
	}

	bill, err := h.svc.MarkPaid(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, toResponse(bill))
}

func (h *Handler) listByStudent(w http.ResponseWriter, r *http.Request) {
	bills, err := h.svc.ListByStudent(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toResponse(b)
	}

	api.JSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrNoPayable):
		api.Error(w, http.StatusNotFound, api.CodeNoPayableBill, "all bills are paid")
	case errors.Is(err, billing.ErrStudentNotFound):
		api.Error(w, http.StatusNotFound, api.CodeStudentNotFound, "student not found")
	case errors.Is(err, billing.ErrNotFound):
		api.Error(w, http.StatusNotFound, api.CodeBillNotFound, "bill not found")
	case errors.Is(err, billing.ErrAlreadyPaid):
		api.Error(w, http.StatusConflict, api.CodeBillAlreadyPaid, "bill is already marked paid")
	default:
		api.Error(w, http.StatusInternalServerError, api.CodeInternal, "internal error")
	}
}
