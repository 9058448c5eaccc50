package v1handler

import (
	"net/http"
	"sonoplan/internal/schedule"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/storage"
)

// CreateSchedule stores a schedule for an existing patient.
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Scheduler.Create(r.Context(), schedule.CreateRequest{
		PatientID:    req.PatientID,
		CreatedBy:    GetUserIDFromContext(r.Context()),
		LMP:          req.LMPDate,
		AUAWeeks:     req.AUAWeeks,
		CorrectedLMP: req.CorrectedLMP,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, DomainScheduleToV1(s))
}

// ListSchedules lists schedules filtered by ?patientId= and ?createdBy=.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	patientID, err := queryID[domain.PatientID](r, "patientId")
	if err != nil {
		writeError(w, r, err)

		return
	}
	createdBy, err := queryID[domain.UserID](r, "createdBy")
	if err != nil {
		writeError(w, r, err)

		return
	}

	schedules, err := h.deps.Scheduler.Schedules(r.Context(), storage.ScheduleFilter{
		PatientID: patientID,
		CreatedBy: createdBy,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, List[Schedule]{Items: mapSlice(schedules, DomainScheduleToV1)})
}

// UpdateSchedule replaces the LMP and corrections of a schedule.
func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScheduleID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Scheduler.Update(r.Context(), id, schedule.UpdateRequest{
		LMP:          req.LMPDate,
		AUAWeeks:     req.AUAWeeks,
		CorrectedLMP: req.CorrectedLMP,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DomainScheduleToV1(s))
}

// DeleteSchedule deletes a schedule and its reminders.
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID[domain.ScheduleID](r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Scheduler.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
