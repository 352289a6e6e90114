package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ndhoang/tuipay/internal/http/api"
	"github.com/ndhoang/tuipay/internal/payment"
)

// Billing reaches the bill registry service.
type Billing struct {
	base
}

func NewBilling(baseURL, apiKey string, timeout time.Duration) *Billing {
	return &Billing{base: newBase(baseURL, apiKey, timeout)}
}

type payableRequest struct {
	StudentRef string `json:"student_ref"`
}

type billResponse struct {
	ID           uuid.UUID `json:"id"`
	Semester     int       `json:"semester"`
	AcademicYear string    `json:"academic_year"`
	Amount       int64     `json:"amount"`
}

func (c *Billing) GetPayable(ctx context.Context, studentRef string) (*payment.BillSummary, error) {
	var resp billResponse

	err := c.doJSON(ctx, http.MethodPost, "/api/bills/payable", payableRequest{StudentRef: studentRef}, &resp)
	if err != nil {
		return nil, translate(err, map[string]error{
			api.CodeNoPayableBill:   payment.ErrNoPayableBill,
			api.CodeStudentNotFound: payment.ErrNoPayableBill,
		})
	}

	return &payment.BillSummary{
		BillID:       resp.ID,
		Semester:     resp.Semester,
		AcademicYear: resp.AcademicYear,
		Amount:       resp.Amount,
	}, nil
}

func (c *Billing) MarkPaid(ctx context.Context, billID uuid.UUID) error {
	return c.doJSON(ctx, http.MethodPost, "/api/bills/"+billID.String()+"/mark-paid", nil, nil)
}
