package config

import "time"

type (
	NET struct {
		// ReadBufferSize is the fixed capacity of the per-connection buffer
		// an incoming message is accumulated in. A message that doesn't fit
		// is rejected, the buffer never grows.
		ReadBufferSize int
		// WriteBufferSize is the fixed capacity of the serializer output.
		// An outgoing message that doesn't fit is a capacity failure, never
		// a truncated write.
		WriteBufferSize int
		// ReadTimeout bounds a single read from the socket.
		ReadTimeout time.Duration
		// WriteTimeout bounds flushing a serialized message out.
		WriteTimeout time.Duration
		// IdleTimeout bounds the whole request/response cycle, no matter
		// how many reads it takes.
		IdleTimeout time.Duration
	}

	Headers struct {
		// Number is the hard limit of header entries per message.
		Number int
	}
)

// Config holds restrictions and buffer sizing used across the engine. All
// the memory an engine instance ever holds is derived from these values at
// construction.
type Config struct {
	NET     NET
	Headers Headers
}

// Default returns the general-purpose sizing profile.
func Default() *Config {
	return &Config{
		NET: NET{
			// 4kb fits ordinary requests together with moderate cookies
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     10 * time.Second,
		},
		Headers: Headers{
			Number: 16,
		},
	}
}

// Small returns a profile tuned for minimal memory footprint. Same engine,
// same algorithms, just smaller buffers and stricter limits.
func Small() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     2 * time.Second,
		},
		Headers: Headers{
			Number: 8,
		},
	}
}

// Fill backfills zero fields of the config with defaults, so partially
// defined configs stay usable.
func Fill(conf *Config) *Config {
	if conf == nil {
		return Default()
	}

	defaults := Default()

	if conf.NET.ReadBufferSize == 0 {
		conf.NET.ReadBufferSize = defaults.NET.ReadBufferSize
	}
	if conf.NET.WriteBufferSize == 0 {
		conf.NET.WriteBufferSize = defaults.NET.WriteBufferSize
	}
	if conf.NET.ReadTimeout == 0 {
		conf.NET.ReadTimeout = defaults.NET.ReadTimeout
	}
	if conf.NET.WriteTimeout == 0 {
		conf.NET.WriteTimeout = defaults.NET.WriteTimeout
	}
	if conf.NET.IdleTimeout == 0 {
		conf.NET.IdleTimeout = defaults.NET.IdleTimeout
	}
	if conf.Headers.Number == 0 {
		conf.Headers.Number = defaults.Headers.Number
	}

	return conf
}
