package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/dto"
	"github.com/courtclub/backend/internal/service/walletservice"
	"github.com/courtclub/backend/pkg/auth"
	"github.com/courtclub/backend/pkg/utils"
)

type Service interface {
	RequestDepositForUser(ctx context.Context, userID string, amount decimal.Decimal, description string) (*domain.WalletTransaction, error)
	TransactionsForUser(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
	ApproveDeposit(ctx context.Context, transactionID int) (*domain.WalletTransaction, decimal.Decimal, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func toTransactionDTO(t *domain.WalletTransaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          t.ID,
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// RequestDeposit godoc
//
//	@Summary		Request a wallet deposit
//	@Description	Record a pending deposit; the balance changes only after an admin approves it
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	tx, err := h.walletService.RequestDepositForUser(r.Context(), userID, amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// Transactions godoc
//
//	@Summary		List wallet transactions
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	transactions, err := h.walletService.TransactionsForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i := range transactions {
		response[i] = toTransactionDTO(&transactions[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveDeposit godoc
//
//	@Summary		Approve a pending deposit
//	@Description	Complete a pending deposit and credit the member's balance. Admin only.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{object}	dto.ApproveDepositResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Not approvable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/wallet/approve/{id} [post]
func (h *WalletHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	tx, newBalance, err := h.walletService.ApproveDeposit(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveDepositResponseDTO{
		Transaction: toTransactionDTO(tx),
		NewBalance:  newBalance.String(),
	})
}
