// Package analytics sends anonymous usage events and crash reports.
//
// Telemetry is off unless a segment write key was compiled in. Users can opt
// out permanently with `enableTelemetry: false` in their config file or for a
// single run with HELLO_DISABLE_TELEMETRY.
package analytics

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hellodev/cli/pkg/cli"
	"github.com/hellodev/cli/pkg/conf"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/utils/pointers"
	"github.com/hellodev/cli/pkg/version"
	"github.com/pkg/errors"
	segment "github.com/segmentio/analytics-go"
)

var (
	// segmentWriteKey is set by the go linker for release builds.
	segmentWriteKey string
	// sentryDSN is set by the go linker for release builds.
	sentryDSN string

	once        sync.Once
	client      segment.Client
	anonymousID string
	enabled     bool
)

// Init initializes the segment and sentry clients. It never fails a command:
// telemetry problems are debug-logged and ignored.
func Init(c *cli.Config) {
	once.Do(func() {
		if segmentWriteKey == "" {
			return
		}

		userCfg, err := conf.ReadDefaultUserConfig()
		if err != nil && !errors.Is(err, conf.ErrMissing) {
			logger.Debug("analytics: read config: %s", err)
		}
		if !telemetryEnabled(c, userCfg) {
			return
		}

		if userCfg.AnonymousID == "" {
			userCfg.AnonymousID = uuid.NewString()
			if err := conf.WriteDefaultUserConfig(userCfg); err != nil {
				logger.Debug("analytics: persist anonymous id: %s", err)
			}
		}
		anonymousID = userCfg.AnonymousID

		client = segment.New(segmentWriteKey)
		enabled = true

		if sentryDSN != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:     sentryDSN,
				Release: version.Get(),
			}); err != nil {
				logger.Debug("analytics: init sentry: %s", err)
			}
		}
	})
}

// Enabled reports whether usage events are being sent.
func Enabled() bool {
	return enabled
}

// telemetryEnabled applies the opt-out rules. The --with-telemetry flag wins
// for a single run, otherwise the user config decides, defaulting to on.
func telemetryEnabled(c *cli.Config, userCfg conf.UserConfig) bool {
	if os.Getenv("HELLO_DISABLE_TELEMETRY") != "" {
		return false
	}
	if c != nil && c.WithTelemetry {
		return true
	}
	if userCfg.EnableTelemetry != nil {
		return pointers.ToBool(userCfg.EnableTelemetry)
	}
	return true
}

// Track sends an analytics event with the given properties.
func Track(c *cli.Config, event string, properties map[string]interface{}) {
	if !enabled || client == nil {
		return
	}

	props := segment.NewProperties().
		Set("version", version.Get()).
		Set("os", runtime.GOOS).
		Set("arch", runtime.GOARCH)
	for k, v := range properties {
		props.Set(k, v)
	}

	if err := client.Enqueue(segment.Track{
		AnonymousId: anonymousID,
		Event:       event,
		Properties:  props,
	}); err != nil {
		logger.Debug("analytics: track %q: %s", event, err)
	}
}

// ReportMessage sends a message to sentry.
func ReportMessage(msg string) {
	if !enabled {
		return
	}
	sentry.CaptureMessage(msg)
}

// ReportError sends an error to sentry.
func ReportError(err error) {
	if !enabled {
		return
	}
	sentry.CaptureException(err)
}

// Close flushes buffered events. Call it before the process exits.
func Close() {
	if client != nil {
		if err := client.Close(); err != nil {
			logger.Debug("analytics: close: %s", err)
		}
		client = nil
	}
	sentry.Flush(2 * time.Second)
}
