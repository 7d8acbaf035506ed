package handlers

import (
	"net/http"
	"strconv"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/behavior"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/dto"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/response"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/validate"
)

type BehaviorHandler struct {
	svc *behavior.Service
}

func NewBehaviorHandler(svc *behavior.Service) *BehaviorHandler {
	return &BehaviorHandler{svc: svc}
}

func (h *BehaviorHandler) Append(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		response.Err(w, err)
		return
	}

	var req dto.AppendBehaviorReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	if _, err := h.svc.Append(r.Context(), behavior.AppendCmd{
		UserID:     userID,
		EventType:  req.EventType,
		Properties: domain.Document(req.Properties),
	}); err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.AckResp{Status: "ok"})
}

func (h *BehaviorHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		response.Err(w, err)
		return
	}

	q := r.URL.Query()
	limit := domain.DefaultListLimit
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			response.Err(w, domain.ErrInvalidField("limit", "must be an integer"))
			return
		}
	}

	events, err := h.svc.List(r.Context(), userID, domain.ListFilter{
		EventType: q.Get("event_type"),
		Limit:     limit,
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.ToBehaviorEventResps(events))
}
