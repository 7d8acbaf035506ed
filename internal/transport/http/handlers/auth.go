package handlers

import (
	"net/http"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/user"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/dto"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/response"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/validate"
)

// AuthHandler is an unauthenticated placeholder keyed only on email: no
// credentials, no sessions, no tokens.
type AuthHandler struct {
	svc *user.Service
}

func NewAuthHandler(svc *user.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	u, err := h.svc.FindByEmail(r.Context(), req.Email)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.LoginResp{ID: u.ID, Email: u.Email})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Err(w, err)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Email, req.Name)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.RegisterResp{ID: u.ID, Email: u.Email, Name: u.Name})
}
