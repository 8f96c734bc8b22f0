// Package httpapi is the planning service's HTTP and WebSocket front end:
// request a one-shot path, start a D* Lite session, push robot-location
// and map-change updates into it, and stream its expanded-node diagnostics
// live.
package httpapi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config is the set of knobs the server reads from viper at startup.
type Config struct {
	Port          int
	WebsocketPort int
	Timeout       time.Duration
}

// LoadConfig reads Config from viper, applying the same defaults this
// service has always bootstrapped with.
func LoadConfig() Config {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("WEBSOCKET_PORT", 6666)
	viper.SetDefault("API_TIMEOUT", "30s")

	return Config{
		Port:          viper.GetInt("API_PORT"),
		WebsocketPort: viper.GetInt("WEBSOCKET_PORT"),
		Timeout:       viper.GetDuration("API_TIMEOUT"),
	}
}

// New builds an *http.Server bound to cfg.Port whose requests use ctx as
// their base context. Canceling ctx does not stop the server; callers
// stop it with Shutdown.
func New(ctx context.Context, handler http.Handler, cfg Config) *http.Server {
	return &http.Server{
		Addr:    netAddr(cfg.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       cfg.Timeout,
		WriteTimeout:      cfg.Timeout,
		IdleTimeout:       2 * cfg.Timeout,
		ReadHeaderTimeout: cfg.Timeout,
	}
}

func netAddr(port int) string {
	return ":" + strconv.Itoa(port)
}
