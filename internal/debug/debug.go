package debug

import (
	"fmt"
	"log"
	"time"
)

// Output prints a timestamped line when verbose mode is enabled
func Output(enabled bool, format string, args ...interface{}) {
	if enabled {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		log.Printf("[%s] %s", timestamp, message)
	}
}

// Timing measures and logs a stage's execution time when verbose mode is
// enabled. Call the returned func when the stage completes.
func Timing(enabled bool, stage string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(enabled, "Starting: %s", stage)

	return func() {
		Output(enabled, "Completed: %s (took %v)", stage, time.Since(start))
	}
}
