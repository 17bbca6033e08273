package rdx

import (
	"log"
	"os"
	"time"

	"tagnest/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// --- Small wrappers so callers don't repeat globals.Ctx everywhere ---

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxHset(hash, field, value string) error {
	return Conn.HSet(globals.Ctx, hash, field, value).Err()
}

func RdxHdel(hash, field string) (int64, error) {
	return Conn.HDel(globals.Ctx, hash, field).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

// --- Trending counters ---

const (
	TrendingHashtagsKey = "trending:hashtags"
	TrendingMentionsKey = "trending:mentions"
)

// BumpTrending increments the sorted-set score of every token by one.
func BumpTrending(key string, tokens []string) {
	for _, tok := range tokens {
		if err := Conn.ZIncrBy(globals.Ctx, key, 1, tok).Err(); err != nil {
			log.Printf("Redis ZIncrBy error for %s: %v", tok, err)
		}
	}
}

// TopTrending returns the highest-scored tokens with their counts.
func TopTrending(key string, limit int64) ([]redis.Z, error) {
	return Conn.ZRevRangeWithScores(globals.Ctx, key, 0, limit-1).Result()
}
