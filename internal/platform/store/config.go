package store

import (
	"time"

	"moodlog/internal/platform/config"
)

type Config struct {
	// AppName is reported to postgres as application_name
	AppName string

	PG PGConfig
}

type PGConfig struct {
	Enabled   bool
	URL       string
	MaxConns  int32
	LogSQL    bool
	// SlowQuery flags statements at or over it; zero flags nothing
	SlowQuery time.Duration

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
)

// PGFromConfig reads the postgres knobs under c's prefix.
// Postgres is enabled exactly when DBURL is set.
func PGFromConfig(c config.Conf) PGConfig {
	url := c.MayString("DBURL", "")
	return PGConfig{
		Enabled:        url != "",
		URL:            url,
		MaxConns:       int32(c.MayInt("MAX_CONNS", 8)),
		LogSQL:         c.MayBool("LOG_SQL", false),
		SlowQuery:      time.Duration(c.MayInt("SLOW_MS", 500)) * time.Millisecond,
		ConnectRetries: c.MayInt("CONNECT_RETRIES", defaultConnectRetries),
		PingTimeout:    c.MayDuration("PING_TIMEOUT", defaultPingTimeout),
	}
}

func (c PGConfig) retries() int {
	if c.ConnectRetries > 0 {
		return c.ConnectRetries
	}
	return defaultConnectRetries
}

func (c PGConfig) pingTimeout() time.Duration {
	if c.PingTimeout > 0 {
		return c.PingTimeout
	}
	return defaultPingTimeout
}
