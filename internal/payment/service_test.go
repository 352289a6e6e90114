package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndhoang/tuipay/internal/payment"
)

type serviceMocks struct {
	repo       *payment.MockRepository
	confirm    *payment.MockConfirmTx
	bills      *payment.MockBills
	accounts   *payment.MockAccounts
	challenges *payment.MockChallenges
	notifier   *payment.MockNotifier
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		repo:       payment.NewMockRepository(ctrl),
		confirm:    payment.NewMockConfirmTx(ctrl),
		bills:      payment.NewMockBills(ctrl),
		accounts:   payment.NewMockAccounts(ctrl),
		challenges: payment.NewMockChallenges(ctrl),
		notifier:   payment.NewMockNotifier(ctrl),
	}
}

func (m *serviceMocks) service() *payment.Service {
	return payment.NewService(m.repo, m.bills, m.accounts, m.challenges, m.notifier)
}

func TestService_RequestChallenge(t *testing.T) {
	payerID := uuid.New()
	billID := uuid.New()
	oldTxID := uuid.New()

	bill := &payment.BillSummary{
		BillID:       billID,
		Semester:     1,
		AcademicYear: "2025-2026",
		Amount:       15_000_000,
	}

	issued := &payment.IssuedChallenge{
		Code:      "123456",
		ExpiresIn: 5 * time.Minute,
	}

	type testCase struct {
		name      string
		setupMock func(m *serviceMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.repo.EXPECT().
					DeletePendingByBill(gomock.Any(), payerID, billID).
					Return(nil, nil)
				m.repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *payment.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
				m.challenges.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(issued, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(&payment.Account{Email: "an@example.com", FullName: "Nguyen Van An", Balance: 20_000_000}, nil)
				m.notifier.EXPECT().
					SendChallenge(gomock.Any(), payment.ChallengeEmail{
						To:        "an@example.com",
						Name:      "Nguyen Van An",
						Code:      "123456",
						Bill:      *bill,
						ExpiresIn: 5 * time.Minute,
					}).
					Return(nil)
			},
		},
		{
			name: "Resend supersedes pending transaction",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.repo.EXPECT().
					DeletePendingByBill(gomock.Any(), payerID, billID).
					Return([]uuid.UUID{oldTxID}, nil)
				m.challenges.EXPECT().
					ExpireByTransaction(gomock.Any(), oldTxID).
					Return(nil)
				m.repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *payment.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.challenges.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(issued, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(&payment.Account{Email: "an@example.com"}, nil)
				m.notifier.EXPECT().
					SendChallenge(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Supersede failure does not block a new challenge",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.repo.EXPECT().
					DeletePendingByBill(gomock.Any(), payerID, billID).
					Return(nil, errors.New("db down"))
				m.repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *payment.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.challenges.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(issued, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(&payment.Account{Email: "an@example.com"}, nil)
				m.notifier.EXPECT().
					SendChallenge(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Email failure is not surfaced",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.repo.EXPECT().
					DeletePendingByBill(gomock.Any(), payerID, billID).
					Return(nil, nil)
				m.repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *payment.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.challenges.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(issued, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(nil, errors.New("account service down"))
			},
		},
		{
			name: "No payable bill",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(nil, payment.ErrNoPayableBill)
			},
			wantErr: payment.ErrNoPayableBill,
		},
		{
			name: "Challenge creation failure drops the codeless transaction",
			setupMock: func(m *serviceMocks) {
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.repo.EXPECT().
					DeletePendingByBill(gomock.Any(), payerID, billID).
					Return(nil, nil)
				m.repo.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *payment.Transaction) error {
						tx.ID = uuid.New()
						return nil
					})
				m.challenges.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, payment.ErrDownstreamUnavailable)
				m.repo.EXPECT().
					DeletePending(gomock.Any(), gomock.Any(), payerID).
					Return(true, nil)
			},
			wantErr: payment.ErrDownstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMock(m)

			svc := m.service()
			got, err := svc.RequestChallenge(context.Background(), payerID, "SV001")
			svc.Wait()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEqual(t, uuid.Nil, got.TransactionID)
			assert.Equal(t, *bill, got.Bill)
			assert.Equal(t, 5*time.Minute, got.ExpiresIn)
		})
	}
}

func TestService_ConfirmPayment(t *testing.T) {
	payerID := uuid.New()
	billID := uuid.New()
	txID := uuid.New()

	bill := &payment.BillSummary{
		BillID:       billID,
		Semester:     1,
		AcademicYear: "2025-2026",
		Amount:       15_000_000,
	}

	pendingTx := func() *payment.Transaction {
		return &payment.Transaction{
			ID:      txID,
			PayerID: payerID,
			BillID:  billID,
			Amount:  15_000_000,
			Status:  payment.StatusPending,
		}
	}

	account := &payment.Account{
		Email:    "an@example.com",
		FullName: "Nguyen Van An",
		Balance:  20_000_000,
	}

	type testCase struct {
		name      string
		setupMock func(m *serviceMocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(m.confirm, nil)
				m.confirm.EXPECT().Transaction().Return(pendingTx())
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(account, nil)
				m.accounts.EXPECT().
					Deduct(gomock.Any(), payerID, int64(15_000_000), payment.ReceiptRef(txID)).
					Return(int64(5_000_000), nil)
				m.bills.EXPECT().
					MarkPaid(gomock.Any(), billID).
					Return(nil)
				m.confirm.EXPECT().Complete(gomock.Any()).Return(nil)
				m.confirm.EXPECT().Rollback().Return(nil)
				m.notifier.EXPECT().
					SendReceipt(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, email payment.ReceiptEmail) error {
						assert.Equal(t, "an@example.com", email.To)
						assert.Equal(t, payment.ReceiptRef(txID), email.ReceiptRef)
						assert.Equal(t, int64(5_000_000), email.NewBalance)
						return nil
					})
			},
		},
		{
			name: "Invalid or expired code",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(uuid.Nil, payment.ErrInvalidOrExpiredCode)
			},
			wantErr: payment.ErrInvalidOrExpiredCode,
		},
		{
			name: "Transaction not found",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(nil, payment.ErrTransactionNotFound)
			},
			wantErr: payment.ErrTransactionNotFound,
		},
		{
			name: "Payable bill changed since the challenge was issued",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(m.confirm, nil)
				m.confirm.EXPECT().Transaction().Return(pendingTx())
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(&payment.BillSummary{BillID: uuid.New(), Amount: 12_000_000}, nil)
				m.confirm.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrStaleBill,
		},
		{
			name: "No payable bill left",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(m.confirm, nil)
				m.confirm.EXPECT().Transaction().Return(pendingTx())
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(nil, payment.ErrNoPayableBill)
				m.confirm.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrStaleBill,
		},
		{
			name: "Insufficient balance on the advisory check",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(m.confirm, nil)
				m.confirm.EXPECT().Transaction().Return(pendingTx())
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(&payment.Account{Balance: 1_000_000}, nil)
				m.confirm.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrInsufficientBalance,
		},
		{
			name: "Insufficient balance at deduction time",
			setupMock: func(m *serviceMocks) {
				m.challenges.EXPECT().
					VerifyAndConsume(gomock.Any(), "123456").
					Return(txID, nil)
				m.repo.EXPECT().
					BeginConfirm(gomock.Any(), txID, payerID).
					Return(m.confirm, nil)
				m.confirm.EXPECT().Transaction().Return(pendingTx())
				m.bills.EXPECT().
					GetPayable(gomock.Any(), "SV001").
					Return(bill, nil)
				m.accounts.EXPECT().
					Get(gomock.Any(), payerID).
					Return(account, nil)
				m.accounts.EXPECT().
					Deduct(gomock.Any(), payerID, int64(15_000_000), payment.ReceiptRef(txID)).
					Return(int64(0), payment.ErrInsufficientBalance)
				m.confirm.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMock(m)

			svc := m.service()
			got, err := svc.ConfirmPayment(context.Background(), payerID, "123456", "SV001")
			svc.Wait()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, txID, got.Transaction.ID)
			assert.Equal(t, int64(5_000_000), got.NewBalance)
		})
	}
}

func TestService_ConfirmPayment_PartialFailure(t *testing.T) {
	payerID := uuid.New()
	billID := uuid.New()
	txID := uuid.New()

	bill := &payment.BillSummary{BillID: billID, Amount: 15_000_000}
	account := &payment.Account{Email: "an@example.com", Balance: 20_000_000}

	tx := &payment.Transaction{
		ID:      txID,
		PayerID: payerID,
		BillID:  billID,
		Amount:  15_000_000,
		Status:  payment.StatusPending,
	}

	forwardPath := func(m *serviceMocks) {
		m.challenges.EXPECT().
			VerifyAndConsume(gomock.Any(), "123456").
			Return(txID, nil)
		m.repo.EXPECT().
			BeginConfirm(gomock.Any(), txID, payerID).
			Return(m.confirm, nil)
		m.confirm.EXPECT().Transaction().Return(tx)
		m.bills.EXPECT().
			GetPayable(gomock.Any(), "SV001").
			Return(bill, nil)
		m.accounts.EXPECT().
			Get(gomock.Any(), payerID).
			Return(account, nil)
		m.accounts.EXPECT().
			Deduct(gomock.Any(), payerID, int64(15_000_000), payment.ReceiptRef(txID)).
			Return(int64(5_000_000), nil)
		m.confirm.EXPECT().Rollback().Return(nil)
	}

	t.Run("MarkPaid failure after deduction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		forwardPath(m)
		m.bills.EXPECT().
			MarkPaid(gomock.Any(), billID).
			Return(errors.New("billing unavailable"))
		// Complete must not run once the saga has diverged.

		svc := m.service()
		got, err := svc.ConfirmPayment(context.Background(), payerID, "123456", "SV001")
		svc.Wait()

		assert.Nil(t, got)
		assert.ErrorIs(t, err, payment.ErrPartialFailure)

		var pf *payment.PartialFailureError
		require.ErrorAs(t, err, &pf)
		assert.Equal(t, payment.ReceiptRef(txID), pf.ReceiptRef)
		assert.Equal(t, txID, pf.TransactionID)
	})

	t.Run("Complete failure after the bill is paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		forwardPath(m)
		m.bills.EXPECT().
			MarkPaid(gomock.Any(), billID).
			Return(nil)
		m.confirm.EXPECT().
			Complete(gomock.Any()).
			Return(errors.New("commit failed"))

		svc := m.service()
		got, err := svc.ConfirmPayment(context.Background(), payerID, "123456", "SV001")
		svc.Wait()

		assert.Nil(t, got)
		assert.ErrorIs(t, err, payment.ErrPartialFailure)

		var pf *payment.PartialFailureError
		require.ErrorAs(t, err, &pf)
		assert.Equal(t, payment.ReceiptRef(txID), pf.ReceiptRef)
	})
}

func TestService_Cancel(t *testing.T) {
	payerID := uuid.New()
	txID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *serviceMocks)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Deletes pending transaction and expires its code",
			setupMock: func(m *serviceMocks) {
				m.repo.EXPECT().
					DeletePending(gomock.Any(), txID, payerID).
					Return(true, nil)
				m.challenges.EXPECT().
					ExpireByTransaction(gomock.Any(), txID).
					Return(nil)
			},
		},
		{
			name: "Nothing pending is a no-op success",
			setupMock: func(m *serviceMocks) {
				m.repo.EXPECT().
					DeletePending(gomock.Any(), txID, payerID).
					Return(false, nil)
			},
		},
		{
			name: "Challenge expiry failure is swallowed",
			setupMock: func(m *serviceMocks) {
				m.repo.EXPECT().
					DeletePending(gomock.Any(), txID, payerID).
					Return(true, nil)
				m.challenges.EXPECT().
					ExpireByTransaction(gomock.Any(), txID).
					Return(errors.New("challenge service down"))
			},
		},
		{
			name: "Repo error",
			setupMock: func(m *serviceMocks) {
				m.repo.EXPECT().
					DeletePending(gomock.Any(), txID, payerID).
					Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tt.setupMock(m)

			err := m.service().Cancel(context.Background(), payerID, txID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_History(t *testing.T) {
	payerID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.repo.EXPECT().
		ListByPayer(gomock.Any(), payerID).
		Return([]*payment.Transaction{
			{ID: uuid.New(), Status: payment.StatusCompleted},
			{ID: uuid.New(), Status: payment.StatusPending},
		}, nil)

	got, err := m.service().History(context.Background(), payerID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReceiptRef(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345678")

	ref := payment.ReceiptRef(id)

	assert.Equal(t, "TXN-A1B2C3D4E5F6", ref)
	assert.Equal(t, ref, payment.ReceiptRef(id))
}
