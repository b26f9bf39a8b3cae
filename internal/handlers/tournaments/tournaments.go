package tournaments

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
	"github.com/courtclub/backend/internal/service/tournamentservice"
	"github.com/courtclub/backend/internal/service/walletservice"
	"github.com/courtclub/backend/pkg/auth"
	"github.com/courtclub/backend/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	List(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error)
	Get(ctx context.Context, id int) (*tournamentservice.Detail, error)
	Join(ctx context.Context, userID string, tournamentID int, teamName string) error
	GenerateSchedule(ctx context.Context, tournamentID int) (int, error)
	RecordResult(ctx context.Context, matchID, score1, score2 int, details string, winningSide domain.WinningSide) (*domain.Match, error)
}

type TournamentHandler struct {
	tournamentService Service
}

func New(tournamentService Service) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

func toTournamentDTO(t *domain.Tournament) dto.TournamentResponseDTO {
	return dto.TournamentResponseDTO{
		ID:        t.ID,
		Name:      t.Name,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Format:    string(t.Format),
		EntryFee:  t.EntryFee.String(),
		PrizePool: t.PrizePool.String(),
		Status:    string(t.Status),
	}
}

func toMatchDTO(m *domain.Match) dto.MatchResponseDTO {
	return dto.MatchResponseDTO{
		ID:          m.ID,
		RoundName:   m.RoundName,
		ScheduledAt: m.ScheduledAt,
		Team1:       m.Team1(),
		Team2:       m.Team2(),
		Score1:      m.Score1,
		Score2:      m.Score2,
		WinningSide: string(m.WinningSide),
		Status:      string(m.Status),
	}
}

func respondTournamentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tournamentservice.ErrNotFound),
		errors.Is(err, tournamentservice.ErrMatchNotFound),
		errors.Is(err, tournamentservice.ErrMemberNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tournamentservice.ErrAlreadyJoined),
		errors.Is(err, tournamentservice.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, tournamentservice.ErrRegistrationClosed),
		errors.Is(err, tournamentservice.ErrFull),
		errors.Is(err, tournamentservice.ErrNotEnoughParticipants):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Create godoc
//
//	@Summary		Create a tournament
//	@Description	Open a new tournament for registration. Admin only.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTournamentRequestDTO	true	"Tournament payload"
//	@Success		200		{object}	dto.TournamentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments [post]
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTournamentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entryFee, err := decimal.NewFromString(req.EntryFee)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid entry fee")
		return
	}
	prizePool, err := decimal.NewFromString(req.PrizePool)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid prize pool")
		return
	}

	switch domain.TournamentFormat(req.Format) {
	case domain.FormatRoundRobin, domain.FormatKnockout, domain.FormatHybrid:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid format")
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), &domain.Tournament{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Format:    domain.TournamentFormat(req.Format),
		EntryFee:  entryFee,
		PrizePool: prizePool,
		Settings: domain.TournamentSettings{
			MaxParticipants: req.MaxParticipants,
			NumGroups:       req.NumGroups,
		},
	})
	if err != nil {
		respondTournamentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTournamentDTO(tournament))
}

// List godoc
//
//	@Summary		List tournaments
//	@Tags			Tournaments
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.TournamentResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments [get]
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.TournamentStatus(r.URL.Query().Get("status"))

	tournaments, err := h.tournamentService.List(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TournamentResponseDTO, len(tournaments))
	for i := range tournaments {
		response[i] = toTournamentDTO(&tournaments[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Tournament detail
//	@Description	A tournament with its participants and full match schedule
//	@Tags			Tournaments
//	@Produce		json
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	dto.TournamentDetailResponseDTO
//	@Failure		404	{object}	utils.Response	"Tournament not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id} [get]
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	detail, err := h.tournamentService.Get(r.Context(), tournamentID)
	if err != nil {
		respondTournamentError(w, err)
		return
	}

	response := dto.TournamentDetailResponseDTO{
		Tournament:   toTournamentDTO(&detail.Tournament),
		Participants: make([]dto.ParticipantDTO, len(detail.Participants)),
		Matches:      make([]dto.MatchResponseDTO, len(detail.Matches)),
	}
	for i, p := range detail.Participants {
		response.Participants[i] = dto.ParticipantDTO{MemberID: p.MemberID, TeamName: p.TeamName}
	}
	for i := range detail.Matches {
		response.Matches[i] = toMatchDTO(&detail.Matches[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Join godoc
//
//	@Summary		Join a tournament
//	@Description	Register for a tournament; the entry fee is charged from the wallet
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Tournament ID"
//	@Param			request	body		dto.JoinTournamentRequestDTO	false	"Join payload"
//	@Success		200		{object}	utils.Response
//	@Failure		402		{object}	utils.Response	"Insufficient wallet balance"
//	@Failure		409		{object}	utils.Response	"Already joined"
//	@Failure		422		{object}	utils.Response	"Registration closed or full"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id}/join [post]
func (h *TournamentHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	var req dto.JoinTournamentRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	if err := h.tournamentService.Join(r.Context(), userID, tournamentID, req.TeamName); err != nil {
		respondTournamentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Joined tournament"})
}

// GenerateSchedule godoc
//
//	@Summary		Draw the tournament schedule
//	@Description	Randomly draw round-1 matches for the tournament's format. Admin only. Re-drawing replaces the previous schedule while the tournament has not started.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Tournament ID"
//	@Success		200	{object}	dto.GenerateScheduleResponseDTO
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		409	{object}	utils.Response	"Tournament already running"
//	@Failure		422	{object}	utils.Response	"Not enough participants"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/tournaments/{id}/generate-schedule [post]
func (h *TournamentHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tournament id")
		return
	}

	matchCount, err := h.tournamentService.GenerateSchedule(r.Context(), tournamentID)
	if err != nil {
		respondTournamentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GenerateScheduleResponseDTO{
		Message:    "Schedule generated",
		MatchCount: matchCount,
	})
}

// RecordResult godoc
//
//	@Summary		Record a match result
//	@Description	Finalize a match with scores; updates ranks for ranked matches and settles the prize when the final concludes. Admin only.
//	@Tags			Tournaments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Match ID"
//	@Param			request	body		dto.RecordResultRequestDTO	true	"Result payload"
//	@Success		200		{object}	dto.MatchResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Match not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/matches/{id}/result [post]
func (h *TournamentHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid match id")
		return
	}

	var req dto.RecordResultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	side := domain.WinningSide(req.WinningSide)
	switch side {
	case domain.SideNone, domain.SideTeam1, domain.SideTeam2:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid winning side")
		return
	}

	match, err := h.tournamentService.RecordResult(r.Context(), matchID, req.Score1, req.Score2, req.Details, side)
	if err != nil {
		respondTournamentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMatchDTO(match))
}
