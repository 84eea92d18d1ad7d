package transport

import (
	"github.com/bakelk/cake_shop/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Qty         uint             `json:"qty"`
	Category    string           `json:"category"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Toppings    []models.Topping `json:"toppings"`
}

type PatchProductRequest struct {
	Name        *string                       `json:"name"`
	Description *string                       `json:"description"`
	Qty         *uint                         `json:"qty"`
	Category    *string                       `json:"category"`
	Price       *float64                      `json:"price"`
	Image       *string                       `json:"image"`
	Toppings    *datatypes.JSONSlice[models.Topping] `json:"toppings"`
}

type AddToCartRequest struct {
	CakeID   uuid.UUID        `json:"cakeId"`
	Quantity uint             `json:"quantity"`
	Toppings []models.Topping `json:"toppings"`
}

type UpdateCartItemRequest struct {
	CakeID   uuid.UUID `json:"cakeId"`
	Quantity uint      `json:"quantity"`
}

type RemoveCartItemRequest struct {
	CakeID uuid.UUID `json:"cakeId"`
}

type PlaceOrderRequest struct {
	CustomerName    string               `json:"customer_name"`
	Address         string               `json:"address"`
	City            string               `json:"city"`
	PostalCode      string               `json:"postal_code"`
	ContactNumber   string               `json:"contact_number"`
	Email           string               `json:"email"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	ReferenceNumber string               `json:"reference_number"`
	ReceiptImage    string               `json:"receipt_image"`
}

type PlaceOrderResponse struct {
	Message string    `json:"message"`
	OrderID uuid.UUID `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type AddCommentRequest struct {
	CakeID      uuid.UUID `json:"cakeId"`
	CommentText string    `json:"commentText"`
	Rating      uint      `json:"rating"`
}

type UpdateCommentRequest struct {
	CommentText *string `json:"commentText"`
	Rating      *uint   `json:"rating"`
}

type AddReplyRequest struct {
	ReplyText string `json:"replyText"`
}

type DeliveryInfoRequest struct {
	CustomerName  string `json:"customer_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}
