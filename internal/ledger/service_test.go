package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ndhoang/tuipay/internal/ledger"
)

func TestService_Deduct(t *testing.T) {
	accountID := uuid.New()

	type args struct {
		amount int64
	}

	type testCase struct {
		name        string
		args        args
		setupMock   func(m *ledger.MockRepository)
		wantBalance int64
		wantErr     error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{amount: 15_000_000},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ConditionalDeduct(gomock.Any(), accountID, int64(15_000_000)).
					Return(int64(5_000_000), nil)
			},
			wantBalance: 5_000_000,
		},
		{
			name: "Insufficient balance",
			args: args{amount: 15_000_000},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					ConditionalDeduct(gomock.Any(), accountID, int64(15_000_000)).
					Return(int64(0), ledger.ErrInsufficientBalance)
			},
			wantErr: ledger.ErrInsufficientBalance,
		},
		{
			name:    "Zero amount rejected before the store",
			args:    args{amount: 0},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name:    "Negative amount rejected before the store",
			args:    args{amount: -100},
			wantErr: ledger.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.Deduct(context.Background(), accountID, tt.args.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, got)
		})
	}
}

func TestService_Get(t *testing.T) {
	accountID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		GetAccount(gomock.Any(), accountID).
		Return(&ledger.Account{ID: accountID, Balance: 20_000_000}, nil)

	got, err := ledger.NewService(repo).Get(context.Background(), accountID)

	require.NoError(t, err)
	assert.Equal(t, int64(20_000_000), got.Balance)
}
