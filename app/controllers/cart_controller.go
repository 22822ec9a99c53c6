package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoply/app/dto"
	"shoply/app/middleware"
	"shoply/app/services"
)

type CartController struct{ Carts *services.CartService }

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	cart, err := c.Carts.GetCart(claims.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	var req dto.CartItemRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ProductID == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Carts.AddItem(claims.UserID, req.ProductID, req.Quantity); err != nil {
		writeCartError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req dto.CartItemRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Carts.UpdateItem(claims.UserID, id, req.Quantity); err != nil {
		writeCartError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Carts.RemoveItem(claims.UserID, id); err != nil {
		writeCartError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err := c.Carts.Clear(claims.UserID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, services.ErrInsufficientStock):
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"insufficient stock"}`))
	case errors.Is(err, services.ErrInvalidInput):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
