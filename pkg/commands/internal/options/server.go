package options

import (
	"fmt"
	"regexp"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/rxkit/pkg/util/xcache"
)

const (
	// ServerFlagCategory is the category of the server flags.
	ServerFlagCategory = "[Server]"

	// DefaultServerPort is the default port for the server to listen on.
	DefaultServerPort int64 = 8080

	// DefaultServerHost is the default host for the server to listen on.
	DefaultServerHost = "127.0.0.1"

	// DefaultCacheSize is the default number of compiled patterns kept.
	DefaultCacheSize int64 = 1024

	// DefaultCacheTTL is how long a compiled pattern is kept.
	DefaultCacheTTL = time.Hour
)

// NewServerOptions returns a new *ServerOptions with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Port:      DefaultServerPort,
		Host:      DefaultServerHost,
		CacheSize: DefaultCacheSize,
	}
}

// ServerOptions defines the options for the server.
type ServerOptions struct {
	// Port is the port for the server to listen on.
	Port int64
	// Host is the host for the server to listen on.
	Host string
	// CacheSize is the number of compiled patterns kept, 0 disables the cache.
	CacheSize int64
}

// Flags returns the []cli.Flag related to current options.
func (o *ServerOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "port to listen on",
			Sources:     cli.EnvVars("RXKIT_SERVER_PORT"),
			Value:       o.Port,
			Destination: &o.Port,
			Category:    ServerFlagCategory,
		},
		&cli.StringFlag{
			Name:        "host",
			Usage:       "host to listen on",
			Sources:     cli.EnvVars("RXKIT_SERVER_HOST"),
			Value:       o.Host,
			Destination: &o.Host,
			Category:    ServerFlagCategory,
		},
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "number of compiled patterns to cache, 0 disables caching",
			Sources:     cli.EnvVars("RXKIT_SERVER_CACHE_SIZE"),
			Value:       o.CacheSize,
			Destination: &o.CacheSize,
			Category:    ServerFlagCategory,
		},
	}
}

// Address returns the server address format as host:port.
func (o *ServerOptions) Address() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// NewPatternCache returns the compiled pattern cache described by the options.
func (o *ServerOptions) NewPatternCache() (xcache.Cache[*regexp.Regexp], error) {
	if o.CacheSize <= 0 {
		return xcache.NewDiscard[*regexp.Regexp](), nil
	}
	return xcache.NewMemory[*regexp.Regexp](int(o.CacheSize), DefaultCacheTTL)
}
