package services

import (
	"errors"
	"strings"

	"shoply/app/dto"
	"shoply/app/models"
	"shoply/app/repo"
)

var ErrInvalidInput = errors.New("invalid input")

type ProductService struct{ products *repo.ProductRepository }

func NewProductService(products *repo.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(query string, page, pageSize int) (*dto.ProductListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	products, total, err := s.products.List(query, page, pageSize)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{Total: total, Page: page, PageSize: pageSize}
	resp.Products = make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp.Products = append(resp.Products, productToDTO(&p))
	}
	return resp, nil
}

func (s *ProductService) Get(id uint) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	d := productToDTO(p)
	return &d, nil
}

func (s *ProductService) Create(req dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(&req); err != nil {
		return nil, err
	}
	p := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Image:       req.Image,
	}
	if err := s.products.Create(p); err != nil {
		return nil, err
	}
	d := productToDTO(p)
	return &d, nil
}

func (s *ProductService) Update(id uint, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(&req); err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.PriceCents = req.PriceCents
	p.Stock = req.Stock
	p.Image = req.Image
	if err := s.products.Save(p); err != nil {
		return nil, err
	}
	d := productToDTO(p)
	return &d, nil
}

func (s *ProductService) Delete(id uint) error {
	if _, err := s.products.FindByID(id); err != nil {
		return err
	}
	return s.products.Delete(id)
}

func validateProduct(req *dto.ProductRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.PriceCents < 0 || req.Stock < 0 {
		return ErrInvalidInput
	}
	return nil
}

func productToDTO(p *models.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Stock:       p.Stock,
		Image:       p.Image,
	}
}
