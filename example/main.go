package main

import (
	"os"

	"github.com/leandrodaf/midiseq/sdk/midi"
)

// Captures events on the "JSeq:Input" sequencer port until the port fails.
// Verbosity comes from MIDISEQ_LOG (debug, info, warn, error).
func main() {
	if err := midi.Capture(); err != nil {
		os.Exit(1)
	}
}
