package httpserver

import (
	"net/http"

	authmw "github.com/bakelk/cake_shop/internal/middleware/auth"
	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler    *CartHTTP
	OrderHandler   *OrderHTTP
	ProductHandler *ProductHTTP
	CommentHandler *CommentHTTP
	WalletHandler  *WalletHTTP
	SearchHandler  *SearchHTTP

	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := authmw.New(d.JWTSecret)

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}

	productsAdmin := products.Group("", authMW.RequireAdmin)
	productsAdmin.POST("", d.ProductHandler.CreateProduct)
	productsAdmin.PATCH("/:id", d.ProductHandler.PatchProduct)
	productsAdmin.DELETE("/:id", d.ProductHandler.DeleteProduct)

	cart := api.Group("/cart", authMW.RequireAuth)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.PUT("/update", d.CartHandler.UpdateCartItem)
	cart.DELETE("/remove", d.CartHandler.RemoveCartItem)

	orders := api.Group("/orders", authMW.RequireAuth)
	orders.POST("", d.OrderHandler.PlaceOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)

	ordersAdmin := api.Group("/admin/orders", authMW.RequireAdmin)
	ordersAdmin.GET("", d.OrderHandler.ListOrders)
	ordersAdmin.PATCH("/:id/status", d.OrderHandler.UpdateOrderStatus)

	comments := api.Group("/comments")
	comments.GET("/:cakeId", d.CommentHandler.GetCommentsByCake)
	comments.POST("", d.CommentHandler.AddComment, authMW.RequireAuth)
	comments.PUT("/:id", d.CommentHandler.UpdateComment, authMW.RequireAuth)
	comments.DELETE("/:id", d.CommentHandler.DeleteComment, authMW.RequireAuth)
	comments.PATCH("/like/:id", d.CommentHandler.ToggleLike, authMW.RequireAuth)
	comments.POST("/reply/:id", d.CommentHandler.AddReply, authMW.RequireAuth)

	wallet := api.Group("/wallet", authMW.RequireAuth)
	wallet.GET("", d.WalletHandler.ListDeliveryInfos)
	wallet.GET("/:id", d.WalletHandler.GetDeliveryInfo)
	wallet.POST("", d.WalletHandler.CreateDeliveryInfo)
	wallet.PUT("/:id", d.WalletHandler.UpdateDeliveryInfo)
	wallet.DELETE("/:id", d.WalletHandler.DeleteDeliveryInfo)
}
