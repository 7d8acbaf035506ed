package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/user"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/domain"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/dto"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/response"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/validate"
)

type UsersHandler struct {
	svc *user.Service
}

func NewUsersHandler(svc *user.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidField(name, "must be an integer")
	}
	return id, nil
}

func (h *UsersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Err(w, err)
		return
	}
	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToUserResp(u))
}

// Upsert is a full replace keyed on email: optional fields omitted from the
// request overwrite existing values to null. 201 on insert, 200 on update.
func (h *UsersHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertUserReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	u, created, err := h.svc.Upsert(r.Context(), domain.Profile{
		Email:       req.Email,
		Name:        req.Name,
		Country:     req.Country,
		City:        req.City,
		Age:         req.Age,
		Preferences: domain.Document(req.Preferences),
	})
	if err != nil {
		response.Err(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.JSON(w, status, dto.ToUserResp(u))
}
