package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/courtclub/backend/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func txRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "member_id", "amount", "type", "status", "related_id", "description", "created_at",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction *domain.WalletTransaction
		mockSetup   func()
		expectErr   bool
	}{
		{
			name: "Insert returns the stored row",
			transaction: &domain.WalletTransaction{
				MemberID:    1,
				Amount:      decimal.NewFromInt(-100_000),
				Type:        domain.TxPayment,
				Status:      domain.TxCompleted,
				RelatedID:   "10",
				Description: "Payment for booking 10",
			},
			mockSetup: func() {
				rows := txRows().AddRow(
					5, 1, decimal.NewFromInt(-100_000), domain.TxPayment, domain.TxCompleted,
					"10", "Payment for booking 10", createdAt,
				)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
					WithArgs(1, decimal.NewFromInt(-100_000), domain.TxPayment, domain.TxCompleted,
						"10", "Payment for booking 10").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			transaction: &domain.WalletTransaction{
				MemberID: 1,
				Amount:   decimal.NewFromInt(100),
				Type:     domain.TxDeposit,
				Status:   domain.TxPending,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), tt.transaction)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, 5, created.ID)
				assert.Equal(t, domain.TxCompleted, created.Status)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing transaction is returned locked",
			id:   5,
			mockSetup: func() {
				rows := txRows().AddRow(
					5, 1, decimal.NewFromInt(1_000), domain.TxDeposit, domain.TxPending,
					"", "top up", createdAt,
				)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing transaction returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE id = $1 FOR UPDATE`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			transaction, err := repo.GetForUpdate(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, transaction)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, transaction)
				assert.Equal(t, tt.id, transaction.ID)
				assert.Equal(t, domain.TxPending, transaction.Status)
			} else {
				assert.Nil(t, transaction)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Status transition", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallet_transactions SET status = $1 WHERE id = $2`)).
			WithArgs(domain.TxCompleted, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(context.Background(), 5, domain.TxCompleted)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallet_transactions SET status = $1 WHERE id = $2`)).
			WithArgs(domain.TxCompleted, 5).
			WillReturnError(errors.New("database error"))

		err := repo.UpdateStatus(context.Background(), 5, domain.TxCompleted)
		assert.Error(t, err)
	})
}

func TestRepository_SetRelatedID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallet_transactions SET related_id = $1 WHERE id = $2`)).
		WithArgs("42", 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetRelatedID(context.Background(), 5, "42")
	assert.NoError(t, err)
}

func TestRepository_ListByMember(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Ledger is returned newest first", func(t *testing.T) {
		rows := txRows().
			AddRow(6, 1, decimal.NewFromInt(1_000), domain.TxDeposit, domain.TxCompleted, "", "", createdAt.Add(time.Hour)).
			AddRow(5, 1, decimal.NewFromInt(-500), domain.TxPayment, domain.TxCompleted, "10", "", createdAt)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE member_id = $1 ORDER BY created_at DESC`)).
			WithArgs(1).
			WillReturnRows(rows)

		txs, err := repo.ListByMember(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, 6, txs[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE member_id = $1 ORDER BY created_at DESC`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		txs, err := repo.ListByMember(context.Background(), 1)
		assert.Error(t, err)
		assert.Nil(t, txs)
	})
}
