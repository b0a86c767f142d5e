package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/altynmine/fuel-inventory-service/internal/usecase/approval"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ApprovalHandler struct {
	workflow approval.Workflow
}

func NewApprovalHandler(workflow approval.Workflow) *ApprovalHandler {
	return &ApprovalHandler{workflow: workflow}
}

type createRequestRequest struct {
	TransactionID uuid.UUID                 `json:"transaction_id"`
	Type          string                    `json:"type"`
	Reason        string                    `json:"reason"`
	NewData       *domain.TransactionChange `json:"new_data"`
}

func (h *ApprovalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	request, err := h.workflow.CreateRequest(r.Context(), &approval.CreateRequestInput{
		TransactionID: req.TransactionID,
		Type:          domain.RequestType(req.Type),
		Reason:        req.Reason,
		RequestedBy:   actorFrom(r),
		NewData:       req.NewData,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApprovalResponse(request))
}

func (h *ApprovalHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid request id")
		return
	}

	request, err := h.workflow.GetRequestByID(r.Context(), requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApprovalResponse(request))
}

func (h *ApprovalHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseApprovalFilters(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	page, limit := parsePagination(r)

	requests, total, err := h.workflow.GetRequests(r.Context(), filters, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	items := make([]approvalResponse, len(requests))
	for i, request := range requests {
		items[i] = toApprovalResponse(request)
	}
	writeJSON(w, http.StatusOK, listResponse[approvalResponse]{
		Items: items, Total: total, Page: page, Limit: limit,
	})
}

type decideRequest struct {
	Decision        string `json:"decision"`
	RejectionReason string `json:"rejection_reason"`
}

func (h *ApprovalHandler) Decide(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid request id")
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	decision := domain.Decision(req.Decision)
	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		writeBadRequest(w, "decision must be APPROVE or REJECT")
		return
	}

	request, err := h.workflow.Decide(r.Context(), requestID, actorFrom(r), decision, req.RejectionReason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApprovalResponse(request))
}

func (h *ApprovalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid request id")
		return
	}

	request, err := h.workflow.Cancel(r.Context(), requestID, actorFrom(r), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toApprovalResponse(request))
}
