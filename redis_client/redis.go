package redis_client

import (
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var RDB *redis.Client

// Init connects RDB to redis.address. RDB stays nil when no address is
// configured, which disables result caching.
func Init() *redis.Client {
	addr := viper.GetString("redis.address")
	if addr == "" {
		RDB = nil
		return nil
	}
	RDB = redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return RDB
}
