package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/pricing"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartService struct {
	Repo *repo.GormRepo
}

// GetCart returns the identity's cart, or an empty cart shape when none
// exists yet. The empty shape is not persisted until the first mutation.
func (svc *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}, Total: 0}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem puts quantity units of a product into the cart, with the given
// topping selections, snapshotting the current product price. An existing
// line is merged only when its topping selections match positionally
// (same names and prices in the same order); the merge keeps the line's
// original snapshot price instead of re-reading the catalog.
func (svc *CartService) AddItem(ctx context.Context, userID uuid.UUID, req transport.AddToCartRequest) (*models.Cart, error) {
	if req.CakeID == uuid.Nil || req.Quantity < 1 {
		return nil, fmt.Errorf("%w: cakeId and quantity >= 1 required", ErrValidation)
	}

	product, err := svc.Repo.GetProduct(ctx, req.CakeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cake %s", ErrNotFound, req.CakeID)
	}
	if err != nil {
		return nil, err
	}
	if product.Qty < req.Quantity {
		return nil, fmt.Errorf("%w: %d requested, %d left", ErrInsufficientStock, req.Quantity, product.Qty)
	}

	toppingsPrice := pricing.ToppingsSubtotal(req.Toppings)

	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = &models.Cart{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		it := &cart.Items[i]
		if it.ProductID != req.CakeID || !sameToppings(it.Toppings, req.Toppings) {
			continue
		}
		it.Quantity += req.Quantity
		it.TotalPrice = pricing.LineTotal(it.UnitPrice, it.ToppingsPrice, it.Quantity)
		merged = true
		break
	}

	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:     req.CakeID,
			Quantity:      req.Quantity,
			UnitPrice:     product.Price,
			Toppings:      req.Toppings,
			ToppingsPrice: toppingsPrice,
			TotalPrice:    pricing.LineTotal(product.Price, toppingsPrice, req.Quantity),
		})
	}

	cart.Total = pricing.CartTotal(cart.Items)

	if err := svc.Repo.SaveCart(ctx, cart, nil); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets the quantity on the first line carrying the product,
// after re-checking live stock. The line keeps its snapshot price.
func (svc *CartService) UpdateItem(ctx context.Context, userID uuid.UUID, req transport.UpdateCartItemRequest) (*models.Cart, error) {
	if req.CakeID == uuid.Nil || req.Quantity < 1 {
		return nil, fmt.Errorf("%w: cakeId and quantity >= 1 required", ErrValidation)
	}

	product, err := svc.Repo.GetProduct(ctx, req.CakeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cake %s", ErrNotFound, req.CakeID)
	}
	if err != nil {
		return nil, err
	}
	if product.Qty < req.Quantity {
		return nil, fmt.Errorf("%w: %d requested, %d left", ErrInsufficientStock, req.Quantity, product.Qty)
	}

	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cart", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var line *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == req.CakeID {
			line = &cart.Items[i]
			break
		}
	}
	if line == nil {
		return nil, fmt.Errorf("%w: item not in cart", ErrNotFound)
	}

	line.Quantity = req.Quantity
	line.TotalPrice = pricing.LineTotal(line.UnitPrice, line.ToppingsPrice, line.Quantity)
	cart.Total = pricing.CartTotal(cart.Items)

	if err := svc.Repo.SaveCart(ctx, cart, nil); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops every line carrying the product, regardless of
// topping selections. The broad match is intentional and mirrors how the
// storefront always behaved.
func (svc *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, cakeID uuid.UUID) (*models.Cart, error) {
	if cakeID == uuid.Nil {
		return nil, fmt.Errorf("%w: cakeId required", ErrValidation)
	}

	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: cart", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var removed []uuid.UUID
	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID == cakeID {
			removed = append(removed, it.ID)
			continue
		}
		kept = append(kept, it)
	}
	cart.Items = kept
	cart.Total = pricing.CartTotal(cart.Items)

	if err := svc.Repo.SaveCart(ctx, cart, removed); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart. A missing cart is already empty.
func (svc *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := svc.Repo.GetCartByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return svc.Repo.ClearCart(ctx, cart.ID)
}

func sameToppings(a, b []models.Topping) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Price != b[i].Price {
			return false
		}
	}
	return true
}
