package router

import (
	"net/http"

	"shoply/app/controllers"
	"shoply/app/middleware"
)

type Controllers struct {
	Health   *controllers.HealthController
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Carts    *controllers.CartController
	Checkout *controllers.CheckoutController
	Admin    *controllers.AdminController
	Social   *controllers.SocialController
}

func NewRouter(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /ping", c.Health.Ping)
	mux.HandleFunc("POST /register", c.Auth.Register)
	mux.HandleFunc("POST /login", c.Auth.Login)
	mux.HandleFunc("GET /products", c.Products.List)
	mux.HandleFunc("GET /products/{id}", c.Products.Get)
	// confirm carries the checkout session id, no bearer needed
	mux.HandleFunc("POST /checkout/confirm", c.Checkout.Confirm)

	// authenticated
	auth := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }
	mux.Handle("GET /cart", auth(c.Carts.Get))
	mux.Handle("POST /cart/items", auth(c.Carts.AddItem))
	mux.Handle("PUT /cart/items/{id}", auth(c.Carts.UpdateItem))
	mux.Handle("DELETE /cart/items/{id}", auth(c.Carts.RemoveItem))
	mux.Handle("DELETE /cart", auth(c.Carts.Clear))
	mux.Handle("POST /checkout", auth(c.Checkout.Create))
	mux.Handle("GET /orders", auth(c.Checkout.ListOrders))
	mux.Handle("GET /orders/{id}", auth(c.Checkout.GetOrder))
	mux.Handle("GET /metrics/{platform}", auth(c.Social.Metrics))

	// admin-only
	admin := func(h http.HandlerFunc) http.Handler { return mw.RequireAdmin(h) }
	mux.Handle("GET /admin/users", admin(c.Admin.ListUsers))
	mux.Handle("POST /admin/users", admin(c.Admin.CreateUser))
	mux.Handle("PUT /admin/users/{id}/role", admin(c.Admin.SetUserRole))
	mux.Handle("POST /admin/products", admin(c.Products.Create))
	mux.Handle("PUT /admin/products/{id}", admin(c.Products.Update))
	mux.Handle("DELETE /admin/products/{id}", admin(c.Products.Delete))
	mux.Handle("GET /admin/orders", admin(c.Checkout.ListAllOrders))
	mux.Handle("GET /admin/social/accounts", admin(c.Social.ListAccounts))
	mux.Handle("POST /admin/social/accounts", admin(c.Social.CreateAccount))
	mux.Handle("PUT /admin/social/accounts/{id}", admin(c.Social.UpdateAccount))
	mux.Handle("DELETE /admin/social/accounts/{id}", admin(c.Social.DeleteAccount))
	mux.Handle("GET /admin/social/posts", admin(c.Social.ListPosts))
	mux.Handle("POST /admin/social/posts", admin(c.Social.SchedulePost))
	mux.Handle("DELETE /admin/social/posts/{id}", admin(c.Social.DeletePost))

	return mux
}
