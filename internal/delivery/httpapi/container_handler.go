package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ContainerHandler struct {
	uc usecase.ContainerUsecase
}

func NewContainerHandler(uc usecase.ContainerUsecase) *ContainerHandler {
	return &ContainerHandler{uc: uc}
}

type createContainerRequest struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	MaxCapacity     float64 `json:"max_capacity"`
	CurrentCapacity float64 `json:"current_capacity"`
	MinThreshold    float64 `json:"min_threshold"`
}

func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	container, err := h.uc.CreateContainer(r.Context(), &usecase.CreateContainerInput{
		Code:            req.Code,
		Name:            req.Name,
		Kind:            domain.ContainerKind(req.Kind),
		MaxCapacity:     req.MaxCapacity,
		CurrentCapacity: req.CurrentCapacity,
		MinThreshold:    req.MinThreshold,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContainerResponse(container))
}

func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}

	container, err := h.uc.GetContainerByID(r.Context(), containerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContainerResponse(container))
}

func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := parseContainerFilters(r)
	page, limit := parsePagination(r)

	containers, total, err := h.uc.GetContainers(r.Context(), filters, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]containerResponse, len(containers))
	for i, container := range containers {
		items[i] = toContainerResponse(container)
	}
	writeJSON(w, http.StatusOK, listResponse[containerResponse]{
		Items: items, Total: total, Page: page, Limit: limit,
	})
}

type updateContainerRequest struct {
	Name         *string  `json:"name"`
	MinThreshold *float64 `json:"min_threshold"`
	Active       *bool    `json:"active"`
}

func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}

	var req updateContainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	container, err := h.uc.UpdateContainer(r.Context(), containerID, &usecase.UpdateContainerInput{
		Name:         req.Name,
		MinThreshold: req.MinThreshold,
		Active:       req.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContainerResponse(container))
}

func (h *ContainerHandler) Retire(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}

	if err := h.uc.RetireContainer(r.Context(), containerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ContainerHandler) Capacity(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}

	projection, err := h.uc.GetCapacityProjection(r.Context(), containerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

type correctionRequest struct {
	NewLevel float64 `json:"new_level"`
	Reason   string  `json:"reason"`
}

func (h *ContainerHandler) Correct(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}

	var req correctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	correction, err := h.uc.ManualCorrection(r.Context(), containerID, req.NewLevel, req.Reason, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCorrectionResponse(correction))
}

func (h *ContainerHandler) Corrections(w http.ResponseWriter, r *http.Request) {
	containerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid container id")
		return
	}
	page, limit := parsePagination(r)

	corrections, total, err := h.uc.GetCorrections(r.Context(), containerID, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]correctionResponse, len(corrections))
	for i, correction := range corrections {
		items[i] = toCorrectionResponse(correction)
	}
	writeJSON(w, http.StatusOK, listResponse[correctionResponse]{
		Items: items, Total: total, Page: page, Limit: limit,
	})
}
