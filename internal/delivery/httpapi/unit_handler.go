package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/altynmine/fuel-inventory-service/internal/usecase"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/engine"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UnitHandler struct {
	uc     usecase.UnitUsecase
	engine engine.Engine
}

func NewUnitHandler(uc usecase.UnitUsecase, fuelEngine engine.Engine) *UnitHandler {
	return &UnitHandler{uc: uc, engine: fuelEngine}
}

type createUnitRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	CurrentDistance float64 `json:"current_distance"`
	CurrentHours    float64 `json:"current_hours"`
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	unit, err := h.uc.CreateUnit(r.Context(), &usecase.CreateUnitInput{
		Code:            req.Code,
		Name:            req.Name,
		CurrentDistance: req.CurrentDistance,
		CurrentHours:    req.CurrentHours,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUnitResponse(unit))
}

func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	unitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid unit id")
		return
	}

	unit, err := h.uc.GetUnitByID(r.Context(), unitID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	units, total, err := h.uc.GetUnits(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]unitResponse, len(units))
	for i, unit := range units {
		items[i] = toUnitResponse(unit)
	}
	writeJSON(w, http.StatusOK, listResponse[unitResponse]{
		Items: items, Total: total, Page: page, Limit: limit,
	})
}

type updateUnitRequest struct {
	Name                *string  `json:"name"`
	Active              *bool    `json:"active"`
	LastServiceDistance *float64 `json:"last_service_distance"`
	LastServiceHours    *float64 `json:"last_service_hours"`
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	unitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid unit id")
		return
	}

	var req updateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	unit, err := h.uc.UpdateUnit(r.Context(), unitID, &usecase.UpdateUnitInput{
		Name:                req.Name,
		Active:              req.Active,
		LastServiceDistance: req.LastServiceDistance,
		LastServiceHours:    req.LastServiceHours,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitHandler) Retire(w http.ResponseWriter, r *http.Request) {
	unitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid unit id")
		return
	}

	if err := h.uc.RetireUnit(r.Context(), unitID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Consumption reports estimated fuel burn per distance and per engine
// hour from the two latest refuelling readings.
func (h *UnitHandler) Consumption(w http.ResponseWriter, r *http.Request) {
	unitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid unit id")
		return
	}

	if _, err := h.uc.GetUnitByID(r.Context(), unitID); err != nil {
		writeError(w, err)
		return
	}

	perDistance, err := h.engine.ConsumptionPerDistance(r.Context(), unitID)
	if err != nil {
		writeError(w, err)
		return
	}
	perHour, err := h.engine.ConsumptionPerHour(r.Context(), unitID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, consumptionResponse{
		UnitID:      unitID,
		PerDistance: perDistance,
		PerHour:     perHour,
	})
}
