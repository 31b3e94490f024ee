package interview

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/transport"
)

type ServiceAPI interface {
	ListInterviews(filter Filter) ([]*Interview, error)
	ScheduleInterview(dto CreateInterviewDTO) (*Interview, error)
	SetStatus(id int64, dto StatusDTO) (*Interview, error)
	SubmitFeedback(dto CreateFeedbackDTO, providedBy int64) (*Feedback, error)
	GetFeedback(interviewID int64) ([]*Feedback, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) interviewID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid interview ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	var filter Filter
	if v := r.URL.Query().Get("candidateId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid candidateId filter")
			return
		}
		filter.CandidateID = id
	}
	filter.UpcomingOnly = r.URL.Query().Get("upcoming") == "true"

	interviews, err := h.Service.ListInterviews(filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, interviews)
}

func (h *Handler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var dto CreateInterviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("ScheduleInterview: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	iv, err := h.Service.ScheduleInterview(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, iv)
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.interviewID(w, r)
	if !ok {
		return
	}

	var dto StatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SetStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	iv, err := h.Service.SetStatus(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, iv)
}

func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := h.interviewID(w, r)
	if !ok {
		return
	}

	feedback, err := h.Service.GetFeedback(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, feedback)
}

func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateFeedbackDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitFeedback: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// On the nested route form the path id wins over whatever the body names.
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid interview ID")
			return
		}
		dto.InterviewID = id
	}

	fb, err := h.Service.SubmitFeedback(dto, authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, fb)
}
