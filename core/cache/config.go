package cache

// Config holds configuration for the read cache.
type Config struct {
	// Driver selects the store (memory, redis).
	Driver string `mapstructure:"driver" default:"memory"`
	// Addr is the redis address (host:port).
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the redis database number.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is the lifetime of cached entries. Zero disables caching.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"300"`
	// Prefix namespaces every key written to the store.
	Prefix string `mapstructure:"prefix" default:"workforce:"`
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)
