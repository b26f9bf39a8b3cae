package walletservice

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/pg"
)

type MemberRepo interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Member, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Member, error)
	UpdateWallet(ctx context.Context, member *domain.Member) error
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error)
	GetForUpdate(ctx context.Context, id int) (*domain.WalletTransaction, error)
	UpdateStatus(ctx context.Context, id int, status domain.TransactionStatus) error
	SetRelatedID(ctx context.Context, id int, relatedID string) error
	ListByMember(ctx context.Context, memberID int) ([]domain.WalletTransaction, error)
}

type TierCalc interface {
	TierFor(totalSpent decimal.Decimal) domain.Tier
}

var (
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInvalidState      = errors.New("transaction is not in an approvable state")
	ErrNotFound          = errors.New("transaction not found")
	ErrMemberNotFound    = errors.New("member not found")
)

type Service struct {
	memberRepo MemberRepo
	txRepo     TransactionRepo
	tiers      TierCalc
	txManager  pg.TXManager
}

func New(memberRepo MemberRepo, txRepo TransactionRepo, tiers TierCalc, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo: memberRepo,
		txRepo:     txRepo,
		tiers:      tiers,
		txManager:  txManager,
	}
}

// Apply moves money on a member's wallet and records the matching Completed
// ledger entry as one atomic unit. A negative amount is a debit: it must not
// take the balance below zero, it adds to cumulative spend and recomputes the
// tier. The member row is locked for the duration, so two concurrent debits
// never both pass the balance check against a stale balance.
func (s *Service) Apply(ctx context.Context, memberID int, amount decimal.Decimal, txType domain.TransactionType, description, relatedID string) (*domain.WalletTransaction, error) {
	var created *domain.WalletTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		member, err := s.memberRepo.GetForUpdate(ctx, memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}

		if amount.IsNegative() && member.WalletBalance.Add(amount).IsNegative() {
			return ErrInsufficientFunds
		}

		member.WalletBalance = member.WalletBalance.Add(amount)
		if amount.IsNegative() {
			member.TotalSpent = member.TotalSpent.Add(amount.Neg())
			member.Tier = s.tiers.TierFor(member.TotalSpent)
		}

		if err := s.memberRepo.UpdateWallet(ctx, member); err != nil {
			return err
		}

		created, err = s.txRepo.Create(ctx, &domain.WalletTransaction{
			MemberID:    memberID,
			Amount:      amount,
			Type:        txType,
			Status:      domain.TxCompleted,
			RelatedID:   relatedID,
			Description: description,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("wallet transaction applied",
		zap.Int("member_id", memberID),
		zap.String("type", string(txType)),
		zap.String("amount", amount.String()))
	return created, nil
}

// RequestDeposit records a Pending deposit with no balance effect. Funds land
// only when a privileged ApproveDeposit completes the transaction.
func (s *Service) RequestDeposit(ctx context.Context, memberID int, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	return s.txRepo.Create(ctx, &domain.WalletTransaction{
		MemberID:    memberID,
		Amount:      amount,
		Type:        domain.TxDeposit,
		Status:      domain.TxPending,
		Description: description,
	})
}

// ApproveDeposit transitions a Pending Deposit/Reward transaction to
// Completed and credits the balance exactly once. Approving anything else,
// including an already-Completed transaction, fails with ErrInvalidState.
func (s *Service) ApproveDeposit(ctx context.Context, transactionID int) (*domain.WalletTransaction, decimal.Decimal, error) {
	var (
		approved   *domain.WalletTransaction
		newBalance decimal.Decimal
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.txRepo.GetForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if tx == nil {
			return ErrNotFound
		}
		if tx.Status != domain.TxPending {
			return ErrInvalidState
		}
		if tx.Type != domain.TxDeposit && tx.Type != domain.TxReward {
			return ErrInvalidState
		}

		member, err := s.memberRepo.GetForUpdate(ctx, tx.MemberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}

		member.WalletBalance = member.WalletBalance.Add(tx.Amount)
		if err := s.memberRepo.UpdateWallet(ctx, member); err != nil {
			return err
		}
		if err := s.txRepo.UpdateStatus(ctx, tx.ID, domain.TxCompleted); err != nil {
			return err
		}

		tx.Status = domain.TxCompleted
		approved = tx
		newBalance = member.WalletBalance
		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	zap.L().Info("deposit approved",
		zap.Int("transaction_id", approved.ID),
		zap.String("new_balance", newBalance.String()))
	return approved, newBalance, nil
}

// RequestDepositForUser resolves the acting user's member profile before
// recording the Pending deposit.
func (s *Service) RequestDepositForUser(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error) {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return s.RequestDeposit(ctx, member.ID, amount, description)
}

// TransactionsForUser lists the acting user's ledger, newest first.
func (s *Service) TransactionsForUser(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	member, err := s.memberRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return s.txRepo.ListByMember(ctx, member.ID)
}

// LinkTransaction points a ledger entry at the domain row it paid for, used
// when the row id is not known until after the entry is written.
func (s *Service) LinkTransaction(ctx context.Context, transactionID, relatedID int) error {
	return s.txRepo.SetRelatedID(ctx, transactionID, strconv.Itoa(relatedID))
}
