package globals

import (
	"context"
	"os"
)

// JwtSecret signs access tokens. Override via TAGNEST_JWT_SECRET in production.
var JwtSecret = []byte(envOr("TAGNEST_JWT_SECRET", "your_secret_key"))

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
