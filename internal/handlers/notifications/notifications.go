package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtclub/backend/internal/domain"
	"github.com/courtclub/backend/internal/dto"
	"github.com/courtclub/backend/internal/service/memberservice"
	"github.com/courtclub/backend/pkg/auth"
	"github.com/courtclub/backend/pkg/utils"
)

type Service interface {
	Profile(ctx context.Context, userID string) (*domain.Member, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
	RankHistory(ctx context.Context, userID string) ([]domain.RankHistory, error)
	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID string, notificationID int) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}

// MemberHandler serves the member's own corner of the API: profile, rank
// history and the notification inbox.
type MemberHandler struct {
	memberService Service
}

func New(memberService Service) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func respondMemberError(w http.ResponseWriter, err error) {
	if errors.Is(err, memberservice.ErrMemberNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

// Profile godoc
//
//	@Summary		Own member profile
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/members/me [get]
func (h *MemberHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	member, err := h.memberService.Profile(r.Context(), userID)
	if err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		MemberID:      member.ID,
		FullName:      member.FullName,
		RankLevel:     member.RankLevel,
		Tier:          string(member.Tier),
		WalletBalance: member.WalletBalance.String(),
		TotalSpent:    member.TotalSpent.String(),
		AvatarURL:     member.AvatarURL,
	})
}

// UpdateAvatar godoc
//
//	@Summary		Update own avatar
//	@Tags			Members
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateAvatarRequestDTO	true	"Avatar payload"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Router			/api/members/me/avatar [put]
func (h *MemberHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.UpdateAvatarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.memberService.UpdateAvatar(r.Context(), userID, req.AvatarURL); err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Avatar updated"})
}

// RankHistory godoc
//
//	@Summary		Own rank history
//	@Tags			Members
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RankHistoryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/members/me/rank-history [get]
func (h *MemberHandler) RankHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	history, err := h.memberService.RankHistory(r.Context(), userID)
	if err != nil {
		respondMemberError(w, err)
		return
	}

	response := make([]dto.RankHistoryResponseDTO, len(history))
	for i, entry := range history {
		response[i] = dto.RankHistoryResponseDTO{
			OldRank:   entry.OldRank,
			NewRank:   entry.NewRank,
			Reason:    entry.Reason,
			ChangedAt: entry.ChangedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// List godoc
//
//	@Summary		Notification inbox
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.NotificationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Router			/api/notifications [get]
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	notifications, err := h.memberService.Notifications(r.Context(), userID)
	if err != nil {
		respondMemberError(w, err)
		return
	}

	response := make([]dto.NotificationResponseDTO, len(notifications))
	for i, n := range notifications {
		response[i] = dto.NotificationResponseDTO{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Severity:  string(n.Severity),
			Link:      n.Link,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MarkRead godoc
//
//	@Summary		Mark a notification read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Notification ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/notifications/{id}/read [post]
func (h *MemberHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	notificationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.memberService.MarkNotificationRead(r.Context(), userID, notificationID); err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Notification marked read"})
}

// MarkAllRead godoc
//
//	@Summary		Mark all notifications read
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/notifications/read-all [post]
func (h *MemberHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	if err := h.memberService.MarkAllNotificationsRead(r.Context(), userID); err != nil {
		respondMemberError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "All notifications marked read"})
}
