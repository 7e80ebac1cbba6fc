package deps

import (
	"time"

	"github.com/MrSnakeDoc/bookshelf/internal/domain"
	"github.com/MrSnakeDoc/bookshelf/internal/index"
	"github.com/MrSnakeDoc/bookshelf/internal/logger"
	redisstore "github.com/MrSnakeDoc/bookshelf/internal/store/redis"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time  // for testing, defaults to time.Now
	NewID        func() string     // for testing, defaults to domain.NewBookID
	AllowedHosts []string          // Host headers allowed to access /books
	AllowedCIDRS []string          // IPs allowed to access healthz/readyz/infra endpoints
	TrustProxy   bool              // true if running behind a trusted reverse proxy
	CORSOrigins  []string          // Origins allowed by the CORS middleware
	Books        *index.BookIndex  // In-memory shelf
	Stats        *redisstore.Store // Operation counters (disabled when Redis is not configured)
	Messages     domain.Messages   // Localized API messages
}
