package eventlog

import (
	"fmt"
	"iter"
	"time"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// FormatLine renders one log record: elapsed seconds with six decimals in a
// twelve character field, the message label and its payload.
func FormatLine(elapsed time.Duration, msg contracts.Message) string {
	return fmt.Sprintf("[%12.6f] - %-7s - %s", elapsed.Seconds(), msg.Label(), msg.Payload())
}

// EventLogger writes one record per message, timed against a fixed start.
type EventLogger struct {
	start  time.Time
	logger contracts.Logger
	since  func(time.Time) time.Duration
}

// New creates an EventLogger measuring elapsed time from start.
func New(start time.Time, logger contracts.Logger) *EventLogger {
	return &EventLogger{start: start, logger: logger, since: time.Since}
}

// Run logs every message of seq in order and returns once seq ends.
// Failure messages are logged at error level; the first one is returned.
func (e *EventLogger) Run(seq iter.Seq[contracts.Message]) error {
	var failure error
	for msg := range seq {
		line := FormatLine(e.since(e.start), msg)

		if f, ok := msg.(contracts.Failure); ok {
			e.logger.Error(line)
			if failure == nil {
				failure = f.Err
			}
			continue
		}
		e.logger.Info(line)
	}
	return failure
}
