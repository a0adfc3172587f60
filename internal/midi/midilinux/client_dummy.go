//go:build !linux
// +build !linux

package midilinux

import (
	"errors"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// ErrUnavailable is returned on systems without the ALSA sequencer.
var ErrUnavailable = errors.New("ALSA sequencer is only available on Linux")

// NewEventSource always fails outside Linux.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	options.Logger.Warn("NewEventSource called on non-Linux system")
	return nil, ErrUnavailable
}
