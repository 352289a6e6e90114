package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_Create(t *testing.T) {
	transactionID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ExpireByTransaction(gomock.Any(), transactionID).
					Return(int64(0), nil)
				m.EXPECT().
					CreateChallenge(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, ch *Challenge) error {
						assert.Len(t, ch.Code, 6)
						assert.Equal(t, transactionID, ch.TransactionID)
						assert.Equal(t, StatusActive, ch.Status)

						ch.ID = uuid.New()
						ch.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "Supersedes a prior active code",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ExpireByTransaction(gomock.Any(), transactionID).
					Return(int64(1), nil)
				m.EXPECT().
					CreateChallenge(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Expiry failure blocks issuing",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ExpireByTransaction(gomock.Any(), transactionID).
					Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "Insert failure",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ExpireByTransaction(gomock.Any(), transactionID).
					Return(int64(0), nil)
				m.EXPECT().
					CreateChallenge(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := NewService(repo, 5*time.Minute, 6)
			got, err := svc.Create(context.Background(), transactionID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Len(t, got.Code, 6)
			for _, r := range got.Code {
				assert.True(t, r >= '0' && r <= '9')
			}
		})
	}
}

func TestService_VerifyAndConsume(t *testing.T) {
	transactionID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cutoff := now.Add(-5 * time.Minute)

	type testCase struct {
		name      string
		setupMock func(m *MockRepository)
		want      uuid.UUID
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success consumes the code",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ConsumeActive(gomock.Any(), "123456", cutoff).
					Return(transactionID, nil)
			},
			want: transactionID,
		},
		{
			name: "Unknown or already used code",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ConsumeActive(gomock.Any(), "123456", cutoff).
					Return(uuid.Nil, ErrNotFound)
				m.EXPECT().
					MarkExpired(gomock.Any(), "123456", cutoff).
					Return(nil)
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "Retirement failure still reports an invalid code",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ConsumeActive(gomock.Any(), "123456", cutoff).
					Return(uuid.Nil, ErrNotFound)
				m.EXPECT().
					MarkExpired(gomock.Any(), "123456", cutoff).
					Return(errors.New("db error"))
			},
			wantErr: ErrInvalidCode,
		},
		{
			name: "Store error passes through",
			setupMock: func(m *MockRepository) {
				m.EXPECT().
					ConsumeActive(gomock.Any(), "123456", cutoff).
					Return(uuid.Nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := NewService(repo, 5*time.Minute, 6)
			svc.now = fixedClock(now)

			got, err := svc.VerifyAndConsume(context.Background(), "123456")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Sweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	repo.EXPECT().
		SweepExpired(gomock.Any(), now.Add(-5*time.Minute)).
		Return(int64(3), nil)

	svc := NewService(repo, 5*time.Minute, 6)
	svc.now = fixedClock(now)

	n, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		code, err := generateCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains a non-digit", code)
		}

		seen[code] = struct{}{}
	}

	// 50 draws from a million values colliding down to a handful would mean
	// the generator is far from uniform.
	assert.Greater(t, len(seen), 40)
}
