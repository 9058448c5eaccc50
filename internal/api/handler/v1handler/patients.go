package v1handler

import (
	"net/http"
	"sonoplan/pkg/domain"
)

// CreatePatient registers a new patient.
func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	p, err := h.deps.Scheduler.CreatePatient(r.Context(), GetUserIDFromContext(r.Context()), req.FullName, req.Phone)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, DomainPatientToV1(p))
}

// ListPatients lists patients, optionally only those registered by ?createdBy=.
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	createdBy, err := queryID[domain.UserID](r, "createdBy")
	if err != nil {
		writeError(w, r, err)

		return
	}

	patients, err := h.deps.Scheduler.Patients(r.Context(), createdBy)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, List[Patient]{Items: mapSlice(patients, DomainPatientToV1)})
}

// GetPlan returns the recommended scans of the patient's latest schedule.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PatientID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	plan, err := h.deps.Scheduler.Plan(r.Context(), id)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, PlanToV1(plan))
}

// Reschedule moves the LMP of the patient's latest schedule.
func (h *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.PatientID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req RescheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Scheduler.Reschedule(r.Context(), id, req.LMPDate)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainScheduleToV1(s))
}
