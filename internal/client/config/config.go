package config

import "time"

// Config holds runtime settings for the KeyFold CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - IdentityFile: path to the passphrase-sealed identity file holding
//     the member's long-term private key.
//   - RequestTimeout: per-request deadline applied to server calls.
type Config struct {
	ServerEndpointAddr string
	IdentityFile       string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.IdentityFile = "identity.kf"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
