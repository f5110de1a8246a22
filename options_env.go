package browser

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// envOptions are Client defaults picked up from the environment so deployed
// tools can be tuned without a code change. Explicit functional options win
// over these.
//
//	ARCHIVE_BROWSER_HTTP_TIMEOUT  e.g. "10s"
//	ARCHIVE_BROWSER_DEBUG         "true" to dump HTTP traffic
type envOptions struct {
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
	Debug       bool          `envconfig:"DEBUG"`
}

// optionsFromEnv translates the environment into a prefix of the option
// list. A malformed environment is logged and ignored rather than fatal.
func optionsFromEnv() []Option {
	var env envOptions
	if err := envconfig.Process("archive_browser", &env); err != nil {
		log.Warn().Err(err).Msg("ignoring malformed ARCHIVE_BROWSER_* environment")
		return nil
	}

	var opts []Option
	if env.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(env.HTTPTimeout))
	}
	if env.Debug {
		opts = append(opts, WithDebugLogging(true))
	}
	return opts
}
