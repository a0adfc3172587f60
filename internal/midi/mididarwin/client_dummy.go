//go:build !darwin
// +build !darwin

package mididarwin

import (
	"errors"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// ErrUnavailable is returned on systems without CoreMIDI.
var ErrUnavailable = errors.New("CoreMIDI is only available on macOS")

// NewEventSource always fails outside macOS.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	options.Logger.Warn("NewEventSource called on non-macOS system")
	return nil, ErrUnavailable
}
