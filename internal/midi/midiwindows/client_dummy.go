//go:build !windows
// +build !windows

package midiwindows

import (
	"errors"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// ErrUnavailable is returned on systems without WinMM.
var ErrUnavailable = errors.New("WinMM is only available on Windows")

// NewEventSource always fails outside Windows.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	options.Logger.Warn("NewEventSource called on non-Windows system")
	return nil, ErrUnavailable
}
