package requirement

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/hirestack/applicant-tracking/internal"
	"github.com/hirestack/applicant-tracking/internal/transport"
	"github.com/hirestack/applicant-tracking/internal/user"
)

type ServiceAPI interface {
	ListRequirements() ([]*Requirement, error)
	GetRequirement(id int64) (*Requirement, error)
	CreateRequirement(dto CreateRequirementDTO, createdBy int64) (*Requirement, error)
	UpdateRequirement(id int64, dto UpdateRequirementDTO) (*Requirement, error)
	DeleteRequirement(id int64) error
	SetStatus(id int64, dto StatusDTO) (*Requirement, error)
	AssignRecruiter(requirementID int64, dto AssignRecruiterDTO) (*RecruiterAssignment, error)
	UnassignRecruiter(requirementID, recruiterID int64) error
	ListRecruiters(requirementID int64) ([]*user.User, error)
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

func (h *Handler) requirementID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid requirement ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.Service.ListRequirements()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, reqs)
}

func (h *Handler) GetRequirement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	req, err := h.Service.GetRequirement(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	authUser, ok := internal.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRequirement: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.CreateRequirement(dto, authUser.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	var dto UpdateRequirementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateRequirement: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateRequirement(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteRequirement(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "requirement deleted"})
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	var dto StatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SetStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.SetStatus(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) AssignRecruiter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	var dto AssignRecruiterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AssignRecruiter: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.AssignRecruiter(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) UnassignRecruiter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	recruiterID, err := strconv.ParseInt(chi.URLParam(r, "recruiterId"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid recruiter ID")
		return
	}

	if err := h.Service.UnassignRecruiter(id, recruiterID); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "recruiter unassigned"})
}

func (h *Handler) ListRecruiters(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requirementID(w, r)
	if !ok {
		return
	}

	recruiters, err := h.Service.ListRecruiters(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, recruiters)
}
