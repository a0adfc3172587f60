package midi

import (
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// NewEventSource opens the sequencer input port with the specified options.
// Unset options fall back to client "JSeq", port "Input", a writable and
// subscribable port, and a zap console logger.
//
// opts ...contracts.Option: A variadic list of option functions to customize the port.
//
// Returns:
//   - contracts.EventSource: The opened input port.
//   - error: An error, if any occurred while validating the names or opening the port.
func NewEventSource(opts ...contracts.Option) (contracts.EventSource, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}
	return NewClient(&options)
}
