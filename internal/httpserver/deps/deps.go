package deps

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkvault/linkvault/internal/auth"
	"github.com/linkvault/linkvault/internal/avatar"
	"github.com/linkvault/linkvault/internal/logger"
	redisstore "github.com/linkvault/linkvault/internal/store/redis"
	"github.com/linkvault/linkvault/internal/store/sqlite"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store       *sqlite.Store     // bookmark + user store
	Cache       *redisstore.Cache // per-owner search-result cache (nil = caching disabled)
	RedisClient *goredis.Client   // raw client, for readiness checks
	Tokens      *auth.TokenIssuer // bearer token issuance/verification
	Avatars     avatar.Uploader   // image host client (nil = avatars disabled)

	SearchCacheTTL time.Duration

	RateLimitBurst  int // auth endpoint rate limiting
	RateLimitPerMin int

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool     // true if running behind a trusted reverse proxy
}
