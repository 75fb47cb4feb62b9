package database

import (
	"api/utils"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	REDIS_IMPORT_PROGRESS_TTL = 24 * time.Hour
	REDIS_BANNER_CACHE_TTL    = 2 * time.Hour

	REDIS_IMPORT_PROGRESS_PREFIX = "import:progress:"
	REDIS_BANNER_CACHE_PREFIX    = "events:banner:"
)

func ConnectRedis() (*redis.Client, error) {
	opts, err := redis.ParseURL(os.Getenv(utils.REDIS_URI))
	if err != nil {
		return nil, err
	}

	return redis.NewClient(opts), nil
}
