package candidate

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/transport"
)

type ServiceAPI interface {
	ListCandidates(filter Filter) ([]*Candidate, error)
	GetCandidate(id int64) (*Candidate, error)
	CreateCandidate(dto CreateCandidateDTO, actingUserID int64) (*Candidate, error)
	UpdateCandidate(id int64, dto UpdateCandidateDTO) (*Candidate, error)
	MoveStage(candidateID int64, dto MoveStageDTO, actingUserID int64) (*Candidate, error)
	GetHistory(candidateID int64) ([]*StageHistory, error)
	AddComment(dto CreateCommentDTO, userID int64) (*Comment, error)
	GetComments(candidateID int64) ([]*Comment, error)
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

func (h *Handler) candidateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid candidate ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	var filter Filter
	if v := r.URL.Query().Get("requirementId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid requirementId filter")
			return
		}
		filter.RequirementID = id
	}
	if v := r.URL.Query().Get("stageId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid stageId filter")
			return
		}
		filter.StageID = id
	}

	candidates, err := h.Service.ListCandidates(filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, candidates)
}

func (h *Handler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.candidateID(w, r)
	if !ok {
		return
	}

	c, err := h.Service.GetCandidate(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCandidateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCandidate: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateCandidate(dto, authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.candidateID(w, r)
	if !ok {
		return
	}

	var dto UpdateCandidateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateCandidate: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.UpdateCandidate(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) MoveStage(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := h.candidateID(w, r)
	if !ok {
		return
	}

	var dto MoveStageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MoveStage: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.MoveStage(id, dto, authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.candidateID(w, r)
	if !ok {
		return
	}

	history, err := h.Service.GetHistory(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, history)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.candidateID(w, r)
	if !ok {
		return
	}

	comments, err := h.Service.GetComments(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCommentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddComment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// On the nested route form the path id wins over whatever the body names.
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid candidate ID")
			return
		}
		dto.CandidateID = id
	}

	cm, err := h.Service.AddComment(dto, authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, cm)
}
