package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string
}

type Redis struct {
	Addr string
	DB   int
}

type Payment struct {
	APIKey     string
	SuccessURL string
	CancelURL  string
	Currency   string
}

type Social struct {
	BaseURL    string
	TimeoutSec int
}

type Scheduler struct {
	Spec        string
	MaxAttempts int
}

type Config struct {
	HTTP  HTTP
	DB    DB
	Redis Redis
	JWT   struct {
		Secret string
		Issuer string
		ExpMin int
	}
	Payment   Payment
	Social    Social
	Scheduler Scheduler
	Admin     struct {
		Email    string
		Password string
	}
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 9500)
	v.SetDefault("server.db.driver", "mysql")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "shoply")
	v.SetDefault("server.db.path", "shoply.db")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.db", 0)
	v.SetDefault("server.payment.currency", "usd")
	v.SetDefault("server.payment.success_url", "http://localhost:3000/checkout/success")
	v.SetDefault("server.payment.cancel_url", "http://localhost:3000/checkout/cancel")
	v.SetDefault("server.social.base_url", "https://api.twitter.com")
	v.SetDefault("server.social.timeout_sec", 10)
	v.SetDefault("server.scheduler.spec", "@every 1m")
	v.SetDefault("server.scheduler.max_attempts", 3)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.host"), Port: v.GetInt("server.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Redis: Redis{Addr: v.GetString("server.redis.addr"), DB: v.GetInt("server.redis.db")},
		Payment: Payment{
			APIKey:     v.GetString("server.payment.api_key"),
			SuccessURL: v.GetString("server.payment.success_url"),
			CancelURL:  v.GetString("server.payment.cancel_url"),
			Currency:   v.GetString("server.payment.currency"),
		},
		Social: Social{
			BaseURL:    v.GetString("server.social.base_url"),
			TimeoutSec: v.GetInt("server.social.timeout_sec"),
		},
		Scheduler: Scheduler{
			Spec:        v.GetString("server.scheduler.spec"),
			MaxAttempts: v.GetInt("server.scheduler.max_attempts"),
		},
	}
	cfg.JWT.Secret = v.GetString("server.jwt.secret")
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	cfg.JWT.Issuer = v.GetString("server.jwt.issuer")
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "shoply"
	}
	cfg.JWT.ExpMin = v.GetInt("server.jwt.exp_min")
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	cfg.Admin.Email = v.GetString("server.admin.email")
	if cfg.Admin.Email == "" {
		cfg.Admin.Email = "admin@shoply.local"
	}
	cfg.Admin.Password = v.GetString("server.admin.password")
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = "admin123"
	}
	if cfg.Scheduler.MaxAttempts <= 0 {
		cfg.Scheduler.MaxAttempts = 3
	}
	return cfg, nil
}
