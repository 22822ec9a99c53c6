package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoply/app/dto"
	"shoply/app/services"
)

type SocialController struct{ Social *services.SocialService }

func NewSocialController(social *services.SocialService) *SocialController {
	return &SocialController{Social: social}
}

// Metrics forwards a dashboard metrics request for one platform.
func (c *SocialController) Metrics(w http.ResponseWriter, r *http.Request) {
	platform := r.PathValue("platform")
	if platform == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	resp, err := c.Social.Metrics(r.Context(), platform)
	if err != nil {
		if isNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"no account connected for platform"}`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"platform request failed"}`))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *SocialController) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Social.ListAccounts()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (c *SocialController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.SocialAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	a, err := c.Social.CreateAccount(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (c *SocialController) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req dto.SocialAccountRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	a, err := c.Social.UpdateAccount(id, req)
	if err != nil {
		if isNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (c *SocialController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Social.DeleteAccount(id); err != nil {
		if isNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *SocialController) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := c.Social.ListPosts()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (c *SocialController) SchedulePost(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduledPostRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Social.SchedulePost(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			w.WriteHeader(http.StatusBadRequest)
		case isNotFound(err):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *SocialController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Social.DeletePost(id); err != nil {
		if isNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
