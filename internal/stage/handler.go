package stage

import (
	"encoding/json"
	"net/http"

	"github.com/hirestack/applicant-tracking/internal/transport"
)

type ServiceAPI interface {
	ListStages() ([]*Stage, error)
	CreateStage(dto CreateStageDTO) (*Stage, error)
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

func (h *Handler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.Service.ListStages()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, stages)
}

func (h *Handler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var dto CreateStageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateStage: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.Service.CreateStage(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, st)
}
