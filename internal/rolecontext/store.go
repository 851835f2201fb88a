package rolecontext

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tradelink-utils/internal/config"
	"tradelink-utils/internal/logging"
	"tradelink-utils/pkg/models"
)

// Roles a session can hold
const (
	RoleHomeowner = "homeowner"
	RoleTradie    = "tradie"
)

// IsValidRole reports whether role is one of the supported roles
func IsValidRole(role string) bool {
	return role == RoleHomeowner || role == RoleTradie
}

// Entry is the per-session role/location record kept in Redis
type Entry struct {
	Role      string                 `json:"role"`
	Location  models.LocationContext `json:"location"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Store keeps each session's current role and location. The web client used
// to keep these in local storage; server-side they live in Redis with a TTL
// so any device in the session sees the same context.
type Store struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewStore creates a new role/location context store
func NewStore(cfg *config.Config) *Store {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &Store{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// DefaultEntry returns the context assigned to a session that has never set one
func (s *Store) DefaultEntry() Entry {
	return Entry{
		Role: s.config.Context.DefaultRole,
		Location: models.LocationContext{
			Suburb:   s.config.Context.DefaultSuburb,
			State:    s.config.Context.DefaultState,
			Postcode: s.config.Context.DefaultPostcode,
		},
		UpdatedAt: time.Now().UTC(),
	}
}

// Get retrieves the context for a session, falling back to the defaults
// when the session has none stored.
func (s *Store) Get(ctx context.Context, sessionID string) (Entry, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return s.DefaultEntry(), nil
		}
		return Entry{}, fmt.Errorf("failed to get session context: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		// A corrupt entry is treated like a missing one
		s.logger.Warn("Discarding unreadable session context", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return s.DefaultEntry(), nil
	}

	return entry, nil
}

// SetRole updates the session's role, keeping the stored location
func (s *Store) SetRole(ctx context.Context, sessionID, role string) (Entry, error) {
	if !IsValidRole(role) {
		return Entry{}, fmt.Errorf("unsupported role: %s", role)
	}

	entry, err := s.Get(ctx, sessionID)
	if err != nil {
		return Entry{}, err
	}

	entry.Role = role
	return entry, s.save(ctx, sessionID, entry)
}

// SetLocation updates the session's location, keeping the stored role
func (s *Store) SetLocation(ctx context.Context, sessionID string, location models.LocationContext) (Entry, error) {
	entry, err := s.Get(ctx, sessionID)
	if err != nil {
		return Entry{}, err
	}

	entry.Location = location
	return entry, s.save(ctx, sessionID, entry)
}

func (s *Store) save(ctx context.Context, sessionID string, entry Entry) error {
	entry.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal session context: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), data, s.config.Context.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session context: %w", err)
	}

	return nil
}

// IsHealthy checks if the store is connected and healthy
func (s *Store) IsHealthy(ctx context.Context) error {
	return s.Ping(ctx)
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("context:session:%s", sessionID)
}
