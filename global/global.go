package global

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"shoply/config"
)

var (
	Config *config.Config
	// Logger defaults to a no-op until initialize replaces it.
	Logger = zerolog.Nop()
	Mdb    *gorm.DB
	Rdb    *redis.Client
)
