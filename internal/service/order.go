package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakelk/cake_shop/internal/logging"
	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventPublisher is the fire-and-forget notification sink. Publish
// failures never affect the outcome of the operation that triggered
// them.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type OrderService struct {
	Repo   *repo.GormRepo
	Events EventPublisher
}

const (
	msgOrderPlacedCOD  = "Order placed successfully! Your order will be delivered soon."
	msgOrderPlacedBank = "Receipt uploaded successfully! We will verify your payment and confirm your order."
)

// PlaceOrder freezes the identity's cart into an order. Validation runs
// in a fixed sequence with first failure winning: delivery fields,
// payment method, bank-transfer extras, then cart presence. Stock is
// re-validated per line while the order row is written, so a cart that
// outlived its stock fails here instead of over-committing inventory.
func (svc *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req transport.PlaceOrderRequest) (*models.Order, string, error) {
	if req.CustomerName == "" || req.Address == "" || req.City == "" ||
		req.PostalCode == "" || req.ContactNumber == "" || req.Email == "" {
		return nil, "", fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if !req.PaymentMethod.Valid() {
		return nil, "", fmt.Errorf("%w: invalid payment method", ErrValidation)
	}
	if req.PaymentMethod == models.PaymentBankTransfer {
		if req.ReferenceNumber == "" {
			return nil, "", fmt.Errorf("%w: reference number is required for bank transfer", ErrValidation)
		}
		if req.ReceiptImage == "" {
			return nil, "", fmt.Errorf("%w: receipt image is required for bank transfer", ErrValidation)
		}
	}

	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrEmptyCart
	}
	if err != nil {
		return nil, "", err
	}
	if len(cart.Items) == 0 {
		return nil, "", ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, err := svc.Repo.GetProduct(ctx, line.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: cake %s", ErrNotFound, line.ProductID)
		}
		if err != nil {
			return nil, "", err
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	order := &models.Order{
		UserID:          userID,
		CustomerName:    req.CustomerName,
		Address:         req.Address,
		City:            req.City,
		PostalCode:      req.PostalCode,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		ReceiptImage:    req.ReceiptImage,
		Items:           items,
		Status:          models.OrderStatusPending,
	}

	order, err = svc.createOrder(ctx, order)
	if err != nil {
		return nil, "", err
	}

	l := logging.FromContext(ctx).With("order_id", order.ID)

	// The order is committed. Cart clearing and the confirmation
	// notification must not undo that.
	if err := svc.Repo.ClearCart(ctx, cart.ID); err != nil {
		l.Error("cart_clear_after_order_failed", "cart_id", cart.ID, "error", err)
	}
	svc.publishConfirmation(ctx, order)

	msg := msgOrderPlacedCOD
	if order.PaymentMethod == models.PaymentBankTransfer {
		msg = msgOrderPlacedBank
	}
	return order, msg, nil
}

// createOrder is the single write path for new orders. Orders enter the
// system Pending; any other initial status is refused.
func (svc *OrderService) createOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: new orders must be %s", ErrValidation, models.OrderStatusPending)
	}

	order, err := svc.Repo.CreateOrder(ctx, order)
	if errors.Is(err, repo.ErrInsufficientStock) {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientStock, err)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cake", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *OrderService) publishConfirmation(ctx context.Context, order *models.Order) {
	if svc.Events == nil {
		return
	}
	event := map[string]any{
		"type":           "order_confirmation",
		"orderID":        order.ID,
		"email":          order.Email,
		"customer_name":  order.CustomerName,
		"payment_method": order.PaymentMethod,
		"items":          order.Items,
	}
	if err := svc.Events.PublishEvent(ctx, "order_events", order.ID.String(), event); err != nil {
		logging.FromContext(ctx).Error("order_confirmation_publish_failed", "order_id", order.ID, "error", err)
	}
}

// GetOrder is owner-scoped: someone else's order id reads as absent.
func (svc *OrderService) GetOrder(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	order, err := svc.Repo.GetOrder(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (svc *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]models.Order, error) {
	return svc.Repo.ListOrders(ctx, limit, offset)
}

// UpdateStatus advances the order along the fulfillment state machine.
func (svc *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	order, err := svc.Repo.GetOrderByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%w: cannot move %s order to %s", ErrConflict, order.Status, next)
	}

	if err := svc.Repo.UpdateOrderStatus(ctx, id, next); err != nil {
		return nil, err
	}
	order.Status = next
	return order, nil
}
