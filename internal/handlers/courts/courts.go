package courts

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
	"github.com/courtclub/backend/internal/service/courtservice"
	"github.com/courtclub/backend/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Court, error)
	Get(ctx context.Context, id int) (*domain.Court, error)
	Create(ctx context.Context, name string, pricePerHour decimal.Decimal) (*domain.Court, error)
	Update(ctx context.Context, id int, name string, pricePerHour decimal.Decimal, isActive bool) (*domain.Court, error)
}

type CourtHandler struct {
	courtService Service
}

func New(courtService Service) *CourtHandler {
	return &CourtHandler{
		courtService: courtService,
	}
}

func toCourtDTO(c *domain.Court) dto.CourtResponseDTO {
	return dto.CourtResponseDTO{
		ID:           c.ID,
		Name:         c.Name,
		PricePerHour: c.PricePerHour.String(),
		IsActive:     c.IsActive,
	}
}

// List godoc
//
//	@Summary		List courts
//	@Tags			Courts
//	@Produce		json
//	@Success		200	{array}		dto.CourtResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/courts [get]
func (h *CourtHandler) List(w http.ResponseWriter, r *http.Request) {
	courts, err := h.courtService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CourtResponseDTO, len(courts))
	for i := range courts {
		response[i] = toCourtDTO(&courts[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Create godoc
//
//	@Summary		Add a court
//	@Description	Register a new bookable court. Admin only.
//	@Tags			Courts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CourtRequestDTO	true	"Court payload"
//	@Success		200		{object}	dto.CourtResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		422		{object}	utils.Response	"Invalid court"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/courts [post]
func (h *CourtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CourtRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	price, err := decimal.NewFromString(req.PricePerHour)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	court, err := h.courtService.Create(r.Context(), req.Name, price)
	if err != nil {
		if errors.Is(err, courtservice.ErrInvalidCourt) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCourtDTO(court))
}

// Update godoc
//
//	@Summary		Update a court
//	@Description	Rename, reprice or deactivate a court. Admin only.
//	@Tags			Courts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Court ID"
//	@Param			request	body		dto.CourtRequestDTO	true	"Court payload"
//	@Success		200		{object}	dto.CourtResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Court not found"
//	@Failure		422		{object}	utils.Response	"Invalid court"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/courts/{id} [put]
func (h *CourtHandler) Update(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid court id")
		return
	}

	var req dto.CourtRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	price, err := decimal.NewFromString(req.PricePerHour)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	court, err := h.courtService.Update(r.Context(), courtID, req.Name, price, req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, courtservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, courtservice.ErrInvalidCourt):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCourtDTO(court))
}
