package scaffold

import (
	"github.com/arthur-debert/pkginit/pkg/logging"
)

// ProgressReporter receives human-readable progress lines
type ProgressReporter func(message string)

// NoProgress discards progress messages
func NoProgress(string) {}

// safeReport delivers message to reporter. A panicking reporter is logged and
// ignored; progress output never decides the outcome of a run.
func safeReport(reporter ProgressReporter, message string) {
	defer func() {
		if r := recover(); r != nil {
			log := logging.GetLogger("scaffold.progress")
			log.Warn().Interface("panic", r).Str("message", message).Msg("Progress reporter failed")
		}
	}()
	reporter(message)
}
