package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shoply/app/controllers"
	"shoply/app/db"
	jwtutil "shoply/app/jwt"
	"shoply/app/middleware"
	"shoply/app/models"
	"shoply/app/payment"
	"shoply/app/repo"
	"shoply/app/scheduler"
	"shoply/app/services"
	"shoply/app/social"
	"shoply/config"
	"shoply/global"
	"shoply/router"
)

type App struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Router    http.Handler
	Publisher *scheduler.Publisher
	Users     *services.UserService
	Products  *services.ProductService
	Carts     *services.CartService
	Checkout  *services.CheckoutService
	Social    *services.SocialService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(models.Tables...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Redis is optional; without it metrics are fetched on every request
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	}

	// Repositories
	userRepo := repo.NewUserRepository(gdb)
	productRepo := repo.NewProductRepository(gdb)
	cartRepo := repo.NewCartRepository(gdb)
	orderRepo := repo.NewOrderRepository(gdb)
	accountRepo := repo.NewSocialAccountRepository(gdb)
	postRepo := repo.NewScheduledPostRepository(gdb)

	// External clients
	paymentClient := payment.NewClient(payment.Config{
		APIKey:     cfg.Payment.APIKey,
		SuccessURL: cfg.Payment.SuccessURL,
		CancelURL:  cfg.Payment.CancelURL,
		Currency:   cfg.Payment.Currency,
	})
	socialClient := social.NewClient(social.Config{
		BaseURL: cfg.Social.BaseURL,
		Timeout: time.Duration(cfg.Social.TimeoutSec) * time.Second,
	})

	// Services
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(gdb, cartRepo, productRepo, orderRepo, paymentClient)
	socialSvc := services.NewSocialService(accountRepo, postRepo, socialClient, global.Rdb, cfg.Scheduler.MaxAttempts)
	if err := userSvc.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	ctrls := router.Controllers{
		Health:   controllers.NewHealthController(),
		Auth:     controllers.NewAuthController(userSvc, signer),
		Products: controllers.NewProductController(productSvc),
		Carts:    controllers.NewCartController(cartSvc),
		Checkout: controllers.NewCheckoutController(checkoutSvc),
		Admin:    controllers.NewAdminController(userSvc),
		Social:   controllers.NewSocialController(socialSvc),
	}

	// Router
	h := router.NewRouter(ctrls, mw)
	h = middleware.Logging(h)

	publisher := scheduler.NewPublisher(socialSvc, cfg.Scheduler.Spec)

	return &App{
		Cfg:       cfg,
		DB:        gdb,
		Router:    h,
		Publisher: publisher,
		Users:     userSvc,
		Products:  productSvc,
		Carts:     cartSvc,
		Checkout:  checkoutSvc,
		Social:    socialSvc,
	}, nil
}
