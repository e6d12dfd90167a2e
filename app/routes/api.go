// Package routes wires the HTTP surface onto the controllers.
package routes

import (
	"net/http"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/controllers"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/metrics"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/middleware"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/response"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Menu    *controllers.MenuController
	Cart    *controllers.CartController
	Review  *controllers.ReviewController
	Payment *controllers.PaymentController
	Stats   *controllers.StatsController
}

// Guards holds the route-level access middlewares.
type Guards struct {
	Authenticate router.Middleware
	RequireAdmin router.Middleware
}

// RegisterAPI mounts every route. Paths and response shapes match what the
// frontend already consumes, so renames here are breaking changes.
func RegisterAPI(r *router.Router, c Controllers, g Guards) {
	admin := func(mws ...router.Middleware) []router.Middleware {
		return append([]router.Middleware{g.Authenticate, g.RequireAdmin}, mws...)
	}

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, map[string]string{"message": "food express server is running"})
	})
	r.HandleFunc("/metrics", metrics.Handler())

	// Auth
	r.Post("/jwt", "auth.token", c.Auth.IssueToken)

	// Users
	r.Post("/users", "users.register", c.User.Register)
	r.Get("/users", "users.list", c.User.List, admin()...)
	r.Delete("/users/{id}", "users.delete", c.User.Delete, admin()...)
	r.Patch("/users/admin/{id}", "users.promote", c.User.Promote, admin()...)
	r.Get("/user/admin/{email}", "users.is_admin", c.User.IsAdmin,
		g.Authenticate, middleware.RequireSelf)

	// Menu
	r.Get("/menu", "menu.list", c.Menu.All)
	r.Get("/menu/{id}", "menu.show", c.Menu.One)
	r.Post("/menu", "menu.create", c.Menu.Create, admin()...)
	r.Patch("/menu/{id}", "menu.update", c.Menu.Update, admin()...)
	r.Delete("/menu/{id}", "menu.delete", c.Menu.Delete, admin()...)
	r.Post("/menu/{id}/image", "menu.upload_image", c.Menu.UploadImage, admin()...)

	// Cart
	r.Get("/carts", "carts.list", c.Cart.ByEmail)
	r.Post("/carts", "carts.add", c.Cart.Add)
	r.Delete("/cart/{id}", "carts.remove", c.Cart.Remove)

	// Reviews
	r.Get("/review", "reviews.list", c.Review.All)
	r.Post("/review", "reviews.create", c.Review.Create)

	// Payments
	r.Post("/create-payment-intent", "payments.intent", c.Payment.CreateIntent)
	r.Post("/payments", "payments.confirm", c.Payment.Confirm)
	r.Get("/payments/{email}", "payments.history", c.Payment.History,
		g.Authenticate, middleware.RequireSelf)

	// Admin dashboard
	r.Get("/admin-stats", "stats.home", c.Stats.AdminStats, admin()...)
	r.Get("/order-stats", "stats.orders", c.Stats.OrderStats, admin()...)
}
