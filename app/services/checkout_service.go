package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shoply/app/dto"
	"shoply/app/models"
	"shoply/app/repo"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotPending = errors.New("order is not pending")
)

// CheckoutSession is the opaque payment-provider object a purchase attempt
// redirects to.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentProvider creates provider-side checkout sessions. The production
// implementation lives in app/payment; tests substitute a fake.
type PaymentProvider interface {
	CreateSession(ctx context.Context, reference string, items []models.OrderItem) (*CheckoutSession, error)
}

type CheckoutService struct {
	db       *gorm.DB
	carts    *repo.CartRepository
	products *repo.ProductRepository
	orders   *repo.OrderRepository
	provider PaymentProvider
}

func NewCheckoutService(db *gorm.DB, carts *repo.CartRepository, products *repo.ProductRepository, orders *repo.OrderRepository, provider PaymentProvider) *CheckoutService {
	return &CheckoutService{db: db, carts: carts, products: products, orders: orders, provider: provider}
}

// CreateCheckout snapshots the user's cart into a pending order and opens a
// checkout session with the payment provider.
func (s *CheckoutService) CreateCheckout(ctx context.Context, userID uint) (*dto.CheckoutResponse, error) {
	cartItems, err := s.carts.ItemsByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		Reference: uuid.NewString(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
	}
	for _, item := range cartItems {
		p, err := s.products.FindByID(item.ProductID)
		if err != nil {
			// product removed from catalog; skip stale row
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		if item.Quantity > p.Stock {
			return nil, ErrInsufficientStock
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitCents: p.PriceCents,
			Quantity:  item.Quantity,
		})
		order.TotalCents += p.PriceCents * int64(item.Quantity)
	}
	if len(order.Items) == 0 {
		return nil, ErrEmptyCart
	}

	sess, err := s.provider.CreateSession(ctx, order.Reference, order.Items)
	if err != nil {
		return nil, err
	}
	order.CheckoutSessionID = sess.ID
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		OrderReference: order.Reference,
		SessionID:      sess.ID,
		RedirectURL:    sess.URL,
	}, nil
}

// Confirm marks the order behind a checkout session as paid, decrements the
// stock of each ordered product and empties the cart, all in one transaction.
// Stock is re-checked at decrement time: another order confirmed between
// checkout and now may already have taken the inventory.
func (s *CheckoutService) Confirm(sessionID string) (*dto.OrderResponse, error) {
	order, err := s.orders.FindBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPending
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		products := s.products.WithTx(tx)
		for _, item := range order.Items {
			ok, err := products.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}
		}
		if err := s.orders.WithTx(tx).UpdateStatus(order.ID, models.OrderStatusPaid); err != nil {
			return err
		}
		return s.carts.WithTx(tx).Clear(order.UserID)
	})
	if err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusPaid
	d := orderToDTO(order)
	return &d, nil
}

func (s *CheckoutService) ListByUser(userID uint) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return ordersToDTO(orders), nil
}

func (s *CheckoutService) GetForUser(userID, orderID uint) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errors.New("order not found")
	}
	d := orderToDTO(order)
	return &d, nil
}

func (s *CheckoutService) ListAll() ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListAll()
	if err != nil {
		return nil, err
	}
	return ordersToDTO(orders), nil
}

func ordersToDTO(orders []models.Order) []dto.OrderResponse {
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderToDTO(&o))
	}
	return result
}

func orderToDTO(o *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitCents: item.UnitCents,
			Quantity:  item.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:         o.ID,
		Reference:  o.Reference,
		Status:     o.Status,
		TotalCents: o.TotalCents,
		Items:      items,
		CreatedAt:  o.CreatedAt.Unix(),
	}
}
