package services

import (
	"errors"

	"shoply/app/dto"
	"shoply/app/models"
	"shoply/app/repo"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type CartService struct {
	carts    *repo.CartRepository
	products *repo.ProductRepository
}

func NewCartService(carts *repo.CartRepository, products *repo.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem puts quantity of a product into the user's cart, merging with an
// existing row for the same product. The merged quantity may not exceed the
// product's current stock.
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	p, err := s.products.FindByID(productID)
	if err != nil {
		return err
	}
	existing, err := s.carts.FindItem(userID, productID)
	if err == nil {
		merged := existing.Quantity + quantity
		if merged > p.Stock {
			return ErrInsufficientStock
		}
		existing.Quantity = merged
		return s.carts.Save(existing)
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	return s.carts.Create(&models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity})
}

func (s *CartService) UpdateItem(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	item, err := s.carts.FindItemByID(userID, itemID)
	if err != nil {
		return err
	}
	p, err := s.products.FindByID(item.ProductID)
	if err != nil {
		return err
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	item.Quantity = quantity
	return s.carts.Save(item)
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	if _, err := s.carts.FindItemByID(userID, itemID); err != nil {
		return err
	}
	return s.carts.DeleteItem(userID, itemID)
}

func (s *CartService) Clear(userID uint) error { return s.carts.Clear(userID) }

func (s *CartService) GetCart(userID uint) (*dto.CartResponse, error) {
	items, err := s.carts.ItemsByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		p, err := s.products.FindByID(item.ProductID)
		if err != nil {
			// product removed from catalog; skip stale row
			continue
		}
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: p.Name,
			UnitCents:   p.PriceCents,
			Quantity:    item.Quantity,
		})
		resp.TotalCents += p.PriceCents * int64(item.Quantity)
	}
	return resp, nil
}
