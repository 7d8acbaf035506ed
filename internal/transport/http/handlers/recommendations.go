package handlers

import (
	"net/http"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/recommend"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/dto"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/response"
)

type RecommendationsHandler struct {
	svc *recommend.Service
}

func NewRecommendationsHandler(svc *recommend.Service) *RecommendationsHandler {
	return &RecommendationsHandler{svc: svc}
}

// Summarize returns the per-type behavior counts with an always-empty
// recommendation list. Unknown users get an empty summary, never a 404.
func (h *RecommendationsHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		response.Err(w, err)
		return
	}

	res, err := h.svc.Summarize(r.Context(), userID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.ToSummaryResp(res))
}
