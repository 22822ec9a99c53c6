package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shoply/app/dto"
	"shoply/app/services"
)

type ProductController struct{ Products *services.ProductService }

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{Products: products}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	resp, err := c.Products.List(r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p, err := c.Products.Get(id)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Products.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var req dto.ProductRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p, err := c.Products.Update(id, req)
	if err != nil {
		switch {
		case isNotFound(err):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, services.ErrInvalidInput):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := c.Products.Delete(id); err != nil {
		if isNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
