package deps

import (
	"time"

	"github.com/opsrig/hostdec/internal/domain"
	"github.com/opsrig/hostdec/internal/index"
	"github.com/opsrig/hostdec/internal/logger"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time   // for testing, defaults to time.Now
	AllowedHosts  []string           // Host headers allowed to access the server
	AllowedCIDRS  []string           // IPs allowed to access operational endpoints
	TrustProxy    bool               // true if running behind a trusted reverse proxy
	InventoryFile string             // Path to the inventory host list file
	RedisClient   *redis.Client      // Redis client connection
	MemoryIndex   *index.MemoryIndex // In-memory host index
	Decoder       *domain.Decoder    // Hostname convention decoder
	BatchWorkers  int                // Concurrent decoders for batch requests
	BatchMaxNames int                // Max names accepted in one batch request
	ReloadTrigger chan struct{}      // Channel to trigger manual inventory reload

	RateLimitBurst  int // Token bucket size for decode endpoints
	RateLimitPerMin int // Token refill per client IP per minute
}
