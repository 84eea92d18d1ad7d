package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bakelk/cake_shop/internal/models"
	"github.com/bakelk/cake_shop/internal/repo"
	"github.com/bakelk/cake_shop/internal/service"
	"github.com/bakelk/cake_shop/internal/tokens"
)

var testJWTSecret = []byte("test-secret")

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	R  *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
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

	r := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		CartHandler:    &CartHTTP{Svc: &service.CartService{Repo: r}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Repo: r}},
		CommentHandler: &CommentHTTP{Svc: &service.CommentService{Repo: r}},
		WalletHandler:  &WalletHTTP{Svc: &service.WalletService{Repo: r}},
		JWTSecret:      testJWTSecret,
	})

	return &testEnv{T: t, E: e, DB: db, R: r}
}

// loginAs mints the access-token cookie the external auth service would
// have set.
func (env *testEnv) loginAs(userID uuid.UUID, role, name string) *http.Cookie {
	token, err := tokens.NewAccessToken(userID.String(), role, name, time.Now().Add(time.Hour), testJWTSecret)
	require.NoError(env.T, err)
	return &http.Cookie{Name: "accessToken", Value: token, Path: "/"}
}

func (env *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) seedProduct(name string, price float64, qty uint) *models.Product {
	p := &models.Product{
		Name:     name,
		Category: "cakes",
		Price:    price,
		Qty:      qty,
		Toppings: []models.Topping{{Name: "Chocolate Chips", Price: 200}},
	}
	require.NoError(env.T, env.DB.Create(p).Error)
	return p
}
