package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoply/app/dto"
	"shoply/app/services"
)

type AdminController struct{ Users *services.UserService }

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListAll()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, dto.UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
	}
	writeJSON(w, http.StatusOK, result)
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Users.CreateUser(req.Email, req.Name, req.Password, req.Role); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (c *AdminController) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req dto.SetRoleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Users.SetRole(id, req.Role); err != nil {
		switch {
		case isNotFound(err):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidInput):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, services.ErrLastAdmin):
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"cannot demote the last admin"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}
