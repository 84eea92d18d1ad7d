package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Topping is a name+price pair. On a product it is an offered add-on,
// on a cart item it is a snapshot taken at selection time.
type Topping struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Product struct {
	ID            uuid.UUID                    `gorm:"primaryKey"     json:"id"`
	Name          string                       `gorm:"not null"       json:"name"`
	Description   string                       `json:"description"`
	Qty           uint                         `gorm:"not null"       json:"qty"`
	Category      string                       `gorm:"not null;index" json:"category"`
	Price         float64                      `gorm:"not null"       json:"price"`
	Image         string                       `json:"image"`
	Toppings      datatypes.JSONSlice[Topping] `json:"toppings"`
	AverageRating float64                      `gorm:"default:0"      json:"average_rating"`
	RatingsCount  uint                         `gorm:"default:0"      json:"ratings_count"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type CartItem struct {
	ID            uuid.UUID                    `gorm:"primaryKey"     json:"id"`
	CartID        uuid.UUID                    `gorm:"index;not null" json:"cart_id"`
	ProductID     uuid.UUID                    `gorm:"not null"       json:"product_id"`
	Quantity      uint                         `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice     float64                      `gorm:"not null"       json:"unit_price"`
	Toppings      datatypes.JSONSlice[Topping] `json:"toppings"`
	ToppingsPrice float64                      `gorm:"default:0"      json:"toppings_price"`
	TotalPrice    float64                      `gorm:"not null"       json:"total_price"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

type Cart struct {
	ID        uuid.UUID  `gorm:"primaryKey"           json:"id"`
	UserID    uuid.UUID  `gorm:"uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `gorm:"not null;default:0"   json:"total"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type PaymentMethod string

const (
	PaymentCOD          PaymentMethod = "COD"
	PaymentBankTransfer PaymentMethod = "BankTransfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentBankTransfer
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// CanTransition reports whether s may move to next. Delivered and
// Cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusShipped || next == OrderStatusCancelled
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"primaryKey"     json:"id"`
	OrderID   uuid.UUID `gorm:"index;not null" json:"order_id"`
	ProductID uuid.UUID `gorm:"not null"       json:"product_id"`
	Name      string    `gorm:"not null"       json:"name"`
	Quantity  uint      `gorm:"not null;check:quantity>0" json:"quantity"`
	UnitPrice float64   `gorm:"not null"       json:"unit_price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}

type Order struct {
	ID              uuid.UUID     `gorm:"primaryKey"     json:"id"`
	UserID          uuid.UUID     `gorm:"index;not null" json:"user_id"`
	CustomerName    string        `gorm:"not null"       json:"customer_name"`
	Address         string        `gorm:"not null"       json:"address"`
	City            string        `gorm:"not null"       json:"city"`
	PostalCode      string        `gorm:"not null"       json:"postal_code"`
	ContactNumber   string        `gorm:"not null"       json:"contact_number"`
	Email           string        `gorm:"not null"       json:"email"`
	PaymentMethod   PaymentMethod `gorm:"not null"       json:"payment_method"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	ReceiptImage    string        `json:"receipt_image,omitempty"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"ordered_items"`
	Status          OrderStatus   `gorm:"not null"       json:"order_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type Reply struct {
	ID        uuid.UUID `gorm:"primaryKey"     json:"id"`
	CommentID uuid.UUID `gorm:"index;not null" json:"comment_id"`
	UserID    uuid.UUID `gorm:"not null"       json:"user_id"`
	UserName  string    `gorm:"not null"       json:"user_name"`
	ReplyText string    `gorm:"not null"       json:"reply_text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Comment struct {
	ID          uuid.UUID                      `gorm:"primaryKey"     json:"id"`
	ProductID   uuid.UUID                      `gorm:"index;not null" json:"product_id"`
	UserID      uuid.UUID                      `gorm:"not null"       json:"user_id"`
	UserName    string                         `gorm:"not null"       json:"user_name"`
	CommentText string                         `gorm:"not null"       json:"comment_text"`
	Rating      uint                           `gorm:"default:0"      json:"rating,omitempty"`
	Likes       datatypes.JSONSlice[uuid.UUID] `json:"likes"`
	Replies     []Reply                        `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"replies"`
	CreatedAt   time.Time                      `json:"created_at"`
	UpdatedAt   time.Time                      `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type DeliveryInfo struct {
	ID            uuid.UUID `gorm:"primaryKey"     json:"id"`
	UserID        uuid.UUID `gorm:"index;not null" json:"user_id"`
	CustomerName  string    `gorm:"not null"       json:"customer_name"`
	Address       string    `gorm:"not null"       json:"address"`
	City          string    `gorm:"not null"       json:"city"`
	PostalCode    string    `gorm:"not null"       json:"postal_code"`
	ContactNumber string    `gorm:"not null"       json:"contact_number"`
	Email         string    `gorm:"not null"       json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (d *DeliveryInfo) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (DeliveryInfo) TableName() string {
	return "delivery_infos"
}

type User struct {
	ID           uuid.UUID `gorm:"primaryKey"      json:"id"`
	Name         string    `gorm:"not null"        json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null"        json:"-"`
	Role         string    `gorm:"not null;default:user" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
