package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/midiseq/internal/midi/mididarwin"
	"github.com/leandrodaf/midiseq/internal/midi/midilinux"
	"github.com/leandrodaf/midiseq/internal/midi/midiwindows"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system has no sequencer backend.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// sourceInitializers maps OS names to the backend that opens the input port.
var sourceInitializers = map[string]func(*contracts.ClientOptions) (contracts.EventSource, error){
	"linux":   midilinux.NewEventSource,   // ALSA sequencer through rtmidi.
	"darwin":  mididarwin.NewEventSource,  // macOS (Darwin) CoreMIDI.
	"windows": midiwindows.NewEventSource, // Windows WinMM.
}

// openSource opens the backend registered for goos.
func openSource(goos string, opts *contracts.ClientOptions) (contracts.EventSource, error) {
	if initializer, exists := sourceInitializers[goos]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}

// NewClient opens the event source for the current operating system.
//
// opts *contracts.ClientOptions: Fully populated options, see applyDefaultOptions.
//
// Returns:
//   - contracts.EventSource: The opened input port.
//   - error: An error if the operating system is unsupported or if the driver fails.
func NewClient(opts *contracts.ClientOptions) (contracts.EventSource, error) {
	return openSource(runtime.GOOS, opts)
}
