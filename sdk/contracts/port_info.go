package contracts

import "strings"

// PortCapability is a bit set of capabilities requested for the input port.
type PortCapability uint32

const (
	// PortCapWrite allows other clients to write events to the port.
	PortCapWrite PortCapability = 1 << iota
	// PortCapSubsWrite allows other clients to subscribe to the port for writing.
	PortCapSubsWrite
)

// Has reports whether every bit of want is set.
func (c PortCapability) Has(want PortCapability) bool {
	return c&want == want
}

func (c PortCapability) String() string {
	var parts []string
	if c.Has(PortCapWrite) {
		parts = append(parts, "WRITE")
	}
	if c.Has(PortCapSubsWrite) {
		parts = append(parts, "SUBS_WRITE")
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// PortInfo contains information about the port an EventSource listens on.
type PortInfo struct {
	Backend      string         // Driver backend name (e.g. "alsa", "coremidi").
	ClientName   string         // Name of the sequencer client.
	PortName     string         // Name of the input port.
	Capabilities PortCapability // Capabilities the port was created with.
}
