package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/engine"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	engine engine.Engine
}

func NewTransactionHandler(fuelEngine engine.Engine) *TransactionHandler {
	return &TransactionHandler{engine: fuelEngine}
}

type createTransactionRequest struct {
	Type              string     `json:"type"`
	SourceContainerID *uuid.UUID `json:"source_container_id"`
	DestContainerID   *uuid.UUID `json:"dest_container_id"`
	UnitID            *uuid.UUID `json:"unit_id"`
	FuelAmount        float64    `json:"fuel_amount"`
	UnitDistance      *float64   `json:"unit_distance"`
	UnitHours         *float64   `json:"unit_hours"`
	TransactionDate   *time.Time `json:"transaction_date"`
	Notes             string     `json:"notes"`
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	input := &engine.CreateTransactionInput{
		Type:              domain.TransactionType(req.Type),
		SourceContainerID: req.SourceContainerID,
		DestContainerID:   req.DestContainerID,
		UnitID:            req.UnitID,
		FuelAmount:        req.FuelAmount,
		UnitDistance:      req.UnitDistance,
		UnitHours:         req.UnitHours,
		Notes:             req.Notes,
		CreatedBy:         actorFrom(r).ID,
	}
	if req.TransactionDate != nil {
		input.TransactionDate = *req.TransactionDate
	}

	trx, err := h.engine.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(trx))
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	trxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	trx, err := h.engine.GetTransactionByID(r.Context(), trxID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(trx))
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseTransactionFilters(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	page, limit := parsePagination(r)

	trxs, total, err := h.engine.GetTransactions(r.Context(), filters, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]transactionResponse, len(trxs))
	for i, trx := range trxs {
		items[i] = toTransactionResponse(trx)
	}
	writeJSON(w, http.StatusOK, listResponse[transactionResponse]{
		Items: items, Total: total, Page: page, Limit: limit,
	})
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	trxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	var change domain.TransactionChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	trx, err := h.engine.Update(r.Context(), trxID, &change, actorFrom(r), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(trx))
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	trxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	if err := h.engine.Delete(r.Context(), trxID, actorFrom(r), time.Now()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TransactionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	trxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	trx, err := h.engine.Restore(r.Context(), trxID, actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(trx))
}

func (h *TransactionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	trxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid transaction id")
		return
	}

	if err := h.engine.ApproveTransaction(r.Context(), trxID, actorFrom(r)); err != nil {
		writeError(w, err)
		return
	}

	trx, err := h.engine.GetTransactionByID(r.Context(), trxID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(trx))
}
