package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultPage  = int64(1)
	defaultLimit = int64(20)
	maxLimit     = int64(100)
)

func parsePagination(r *http.Request) (page, limit int64) {
	page, limit = defaultPage, defaultLimit
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func parseTransactionFilters(r *http.Request) (domain.TransactionFilters, error) {
	var filters domain.TransactionFilters
	q := r.URL.Query()

	if raw := q.Get("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			filters.Types = append(filters.Types, domain.TransactionType(strings.ToUpper(strings.TrimSpace(t))))
		}
	}
	if raw := q.Get("container_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid container_id: %s", raw)
		}
		filters.ContainerID = &id
	}
	if raw := q.Get("unit_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid unit_id: %s", raw)
		}
		filters.UnitID = &id
	}
	if raw := q.Get("date_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_from: %s", raw)
		}
		filters.DateFrom = t
	}
	if raw := q.Get("date_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, fmt.Errorf("invalid date_to: %s", raw)
		}
		filters.DateTo = t
	}
	filters.Deleted = q.Get("deleted") == "true"

	return filters, nil
}

func parseApprovalFilters(r *http.Request) (domain.ApprovalFilters, error) {
	var filters domain.ApprovalFilters
	q := r.URL.Query()

	if raw := q.Get("transaction_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid transaction_id: %s", raw)
		}
		filters.TransactionID = &id
	}
	if raw := q.Get("status"); raw != "" {
		filters.Status = domain.RequestStatus(strings.ToUpper(raw))
	}
	if raw := q.Get("type"); raw != "" {
		filters.Type = domain.RequestType(strings.ToUpper(raw))
	}
	if raw := q.Get("requested_by"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filters, fmt.Errorf("invalid requested_by: %s", raw)
		}
		filters.RequestedBy = &id
	}

	return filters, nil
}

func parseContainerFilters(r *http.Request) domain.ContainerFilters {
	var filters domain.ContainerFilters
	q := r.URL.Query()

	if raw := q.Get("kind"); raw != "" {
		filters.Kind = domain.ContainerKind(strings.ToUpper(raw))
	}
	if raw := q.Get("active"); raw != "" {
		active := raw == "true"
		filters.Active = &active
	}
	filters.Code = q.Get("code")

	return filters
}
