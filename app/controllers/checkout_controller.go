package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoply/app/dto"
	"shoply/app/middleware"
	"shoply/app/services"
)

type CheckoutController struct{ Checkout *services.CheckoutService }

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

func (c *CheckoutController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	resp, err := c.Checkout.CreateCheckout(r.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"cart is empty"}`))
		case errors.Is(err, services.ErrInsufficientStock):
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"insufficient stock"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"checkout failed"}`))
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (c *CheckoutController) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.SessionID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	order, err := c.Checkout.Confirm(req.SessionID)
	if err != nil {
		switch {
		case isNotFound(err):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, services.ErrOrderNotPending):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, services.ErrInsufficientStock):
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"insufficient stock"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (c *CheckoutController) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	orders, err := c.Checkout.ListByUser(claims.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (c *CheckoutController) GetOrder(w http.ResponseWriter, r *http.Request) {
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
	order, err := c.Checkout.GetForUser(claims.UserID, id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (c *CheckoutController) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.Checkout.ListAll()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
