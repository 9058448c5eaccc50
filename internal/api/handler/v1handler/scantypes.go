package v1handler

import (
	"net/http"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/gestation"
)

func (h *Handler) ListScanTypes(w http.ResponseWriter, r *http.Request) {
	scanTypes, err := h.deps.Scheduler.ScanTypes(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, List[ScanType]{Items: mapSlice(scanTypes, DomainScanTypeToV1)})
}

func (h *Handler) CreateScanType(w http.ResponseWriter, r *http.Request) {
	var req CreateScanTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	st, err := h.deps.Scheduler.CreateScanType(r.Context(),
		GetUserIDFromContext(r.Context()),
		req.Name,
		req.WeekRangeStart,
		req.WeekRangeEnd)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, DomainScanTypeToV1(st))
}

// DeleteScanType deletes a custom scan type; default ones answer 403.
func (h *Handler) DeleteScanType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScanTypeID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Scheduler.DeleteScanType(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Calculate computes due date and scan windows for an LMP without storing anything.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	definitions := make([]gestation.Definition, len(req.ScanTypes))
	for i, st := range req.ScanTypes {
		definitions[i] = gestation.Definition{
			Name:           st.Name,
			WeekRangeStart: st.WeekRangeStart,
			WeekRangeEnd:   st.WeekRangeEnd,
		}
	}

	calc, err := h.deps.Scheduler.Calculate(r.Context(), req.LMPDate, definitions)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, calc)
}

// GetReport returns patient and schedule counters.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Scheduler.Report(r.Context(), h.deps.Now())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, report)
}
