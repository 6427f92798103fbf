package routes

import (
	"dishpatch-be/configs"
	"dishpatch-be/controllers"
	"dishpatch-be/entity"
	"dishpatch-be/middlewares"
	"dishpatch-be/pkg/cache"
	"dishpatch-be/pkg/gateway"
	"dishpatch-be/pkg/mailer"
	"dishpatch-be/pkg/storage"
	"dishpatch-be/repository"
	"dishpatch-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps carries every external collaborator the service layer needs.
type Deps struct {
	DB      *gorm.DB
	Cfg     *configs.Config
	Cache   cache.Cache
	Storage storage.Uploader
	Mailer  mailer.Mailer
	Gateway gateway.PaymentGateway
	Log     *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(d.DB)
	cityRepo := repository.NewCityRepository(d.DB)
	restRepo := repository.NewRestaurantRepository(d.DB)
	dishRepo := repository.NewDishRepository(d.DB)
	cartRepo := repository.NewCartRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)
	paymentRepo := repository.NewPaymentRepository(d.DB)
	ratingRepo := repository.NewRatingRepository(d.DB)

	// Services
	authSvc := services.NewAuthService(userRepo, d.Cache, d.Mailer, d.Log, d.Cfg.JWTSecret, d.Cfg.JWTTTL, d.Cfg.OTPTTL)
	userSvc := services.NewUserService(userRepo)
	citySvc := services.NewCityService(cityRepo)
	restSvc := services.NewRestaurantService(restRepo, cityRepo, d.Storage)
	dishSvc := services.NewDishService(dishRepo, restRepo, d.Storage)
	cartSvc := services.NewCartService(d.DB, cartRepo, dishRepo)
	orderSvc := services.NewOrderService(d.DB, orderRepo, cartRepo, userRepo, d.Mailer, d.Log, d.Cfg.GSTRate, d.Cfg.DeliveryCharges)
	paymentSvc := services.NewPaymentService(d.DB, paymentRepo, orderRepo, userRepo, d.Gateway, d.Mailer, d.Log)
	ratingSvc := services.NewRatingService(ratingRepo, dishRepo, restRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	cityCtrl := controllers.NewCityController(citySvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	ratingCtrl := controllers.NewRatingController(ratingSvc)

	secret := d.Cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/otp/send", authCtrl.SendOTP)
		a.POST("/otp/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public catalog
	r.GET("/cities", cityCtrl.List)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/dishes", dishCtrl.ListForRestaurant)
	r.GET("/restaurants/:id/ratings", ratingCtrl.ListForRestaurant)
	r.GET("/dishes/:id", dishCtrl.Detail)
	r.GET("/dishes/:id/ratings", ratingCtrl.ListForDish)

	// Catalog management (owner/admin)
	owner := r.Group("/", middlewares.AuthMiddleware(secret, entity.RoleRestaurantOwner, entity.RoleAdmin))
	{
		owner.POST("/restaurants", restCtrl.Create)
		owner.PATCH("/restaurants/:id", restCtrl.Update)
		owner.DELETE("/restaurants/:id", restCtrl.Delete)
		owner.POST("/restaurants/:id/image", restCtrl.UploadImage)
		owner.POST("/dishes", dishCtrl.Create)
		owner.PATCH("/dishes/:id", dishCtrl.Update)
		owner.DELETE("/dishes/:id", dishCtrl.Delete)
		owner.POST("/dishes/:id/image", dishCtrl.UploadImage)
	}

	// Cart, orders, payments, ratings (any authenticated user)
	u := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.AddItem)
		u.DELETE("/cart/:cartId", cartCtrl.Empty)
		u.DELETE("/cart/:cartId/items/:dishId", cartCtrl.RemoveItem)

		u.POST("/orders", orderCtrl.Place)
		u.GET("/orders", orderCtrl.List)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.DELETE("/orders/:id", orderCtrl.Delete)
		u.GET("/orders/:id/payment", paymentCtrl.GetForOrder)

		u.POST("/payments", paymentCtrl.Make)

		u.POST("/ratings", ratingCtrl.Create)
		u.DELETE("/ratings/:id", ratingCtrl.Delete)
	}

	// Delivery partner
	partner := r.Group("/partner", middlewares.AuthMiddleware(secret, entity.RoleDeliveryPartner))
	{
		partner.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.GET("/users", userCtrl.List)
		admin.POST("/users/:id/roles", userCtrl.GrantRole)
		admin.DELETE("/users/:id/roles/:role", userCtrl.RevokeRole)
		admin.POST("/cities", cityCtrl.Create)
		admin.DELETE("/cities/:id", cityCtrl.Delete)
		admin.PATCH("/orders/:id/assign", orderCtrl.Assign)
	}
}
