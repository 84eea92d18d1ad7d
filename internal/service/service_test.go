package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Comment{},
		&models.Reply{},
		&models.DeliveryInfo{},
		&models.User{},
	))

	return &repo.GormRepo{DB: db}
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, price float64, qty uint) *models.Product {
	p := &models.Product{
		Name:     name,
		Category: "cakes",
		Price:    price,
		Qty:      qty,
		Toppings: []models.Topping{
			{Name: "Chocolate Chips", Price: 200},
			{Name: "Sprinkles", Price: 100},
		},
	}
	require.NoError(t, r.DB.Create(p).Error)
	return p
}

// recordingPublisher captures published events instead of talking to a
// broker.
type recordingPublisher struct {
	topics []string
	keys   []string
	events []any
	fail   error
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	if p.fail != nil {
		return p.fail
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

func userIdentity(name string) Identity {
	return Identity{UserID: uuid.New(), Name: name, Role: "user"}
}

func adminIdentity(name string) Identity {
	return Identity{UserID: uuid.New(), Name: name, Role: "admin"}
}
