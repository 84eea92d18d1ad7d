// Package pricing holds the pure money arithmetic for carts. Values
// are exact float64 amounts; rounding for display is the caller's job.
package pricing

import "github.com/bakelk/cake_shop/internal/models"

// ToppingsSubtotal sums the snapshot prices of the selected toppings.
func ToppingsSubtotal(selections []models.Topping) float64 {
	var sum float64
	for _, t := range selections {
		sum += t.Price
	}
	return sum
}

// LineTotal is (unit price + toppings subtotal) * quantity.
func LineTotal(unitPrice, toppingsSubtotal float64, quantity uint) float64 {
	return (unitPrice + toppingsSubtotal) * float64(quantity)
}

// CartTotal sums the stored line totals of all items.
func CartTotal(items []models.CartItem) float64 {
	var sum float64
	for i := range items {
		sum += items[i].TotalPrice
	}
	return sum
}
