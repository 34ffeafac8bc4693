package router

import (
	"resto_manager/handler"
	"resto_manager/middleware"
	"resto_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", middleware.RedirectIfAuthenticated(), validate.Register(), handler.Register)
	auth.Post("/login", middleware.RedirectIfAuthenticated(), validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	restaurant := v1.Group("/restaurant", logger.New())
	restaurant.Get("/", middleware.Protected(), handler.GetRestaurant)
	restaurant.Put("/", middleware.Protected(), validate.EditRestaurant(), handler.EditRestaurant)
	restaurant.Post("/logo", middleware.Protected(), handler.UploadRestaurantLogo)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	dish := v1.Group("/dish", logger.New())
	dish.Get("/", middleware.Protected(), handler.GetDishes)
	dish.Post("/", middleware.Protected(), validate.CreateDish(), handler.CreateDish)
	dish.Put("/:dishId", middleware.Protected(), validate.EditDish("dishId"), handler.EditDish)
	dish.Delete("/:dishId", middleware.Protected(), validate.GetById("dishId"), handler.DeleteDish)
	dish.Post("/:dishId/image", middleware.Protected(), validate.GetById("dishId"), handler.UploadDishImage)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrder)
	order.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)

	client := v1.Group("/client", logger.New())
	client.Get("/", middleware.Protected(), handler.GetClients)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetStatistics)

	dashboard := v1.Group("/dashboard", logger.New())
	dashboard.Get("/", middleware.Protected(), handler.GetDashboard)
	dashboard.Get("/qrcode", middleware.Protected(), handler.GetMenuQRCode)

	v1.Get("/ws/orders", middleware.Protected(), websocket.New(handler.OrderFeedConnection))

	// Public storefront
	resto := v1.Group("/resto")
	resto.Get("/:slug", handler.GetPublicMenu)
	resto.Post("/:slug/commander", validate.Checkout(), handler.Checkout)
}
