// Package scripted provides an EventSource that replays a fixed list of events.
package scripted

import (
	"sync"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// Source replays its events in order. After the last one it returns End,
// or contracts.ErrSourceClosed when End is nil.
type Source struct {
	Events []contracts.RawEvent
	End    error

	mu     sync.Mutex
	next   int
	reads  int
	closed bool
}

// New returns a Source replaying events and then failing with end.
func New(end error, events ...contracts.RawEvent) *Source {
	return &Source{Events: events, End: end}
}

func (s *Source) ReadEvent() (contracts.RawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.closed {
		return contracts.RawEvent{}, contracts.ErrSourceClosed
	}
	if s.next < len(s.Events) {
		ev := s.Events[s.next]
		s.next++
		return ev, nil
	}
	if s.End != nil {
		return contracts.RawEvent{}, s.End
	}
	return contracts.RawEvent{}, contracts.ErrSourceClosed
}

func (s *Source) Info() contracts.PortInfo {
	return contracts.PortInfo{
		Backend:      "scripted",
		ClientName:   contracts.DefaultClientName,
		PortName:     contracts.DefaultPortName,
		Capabilities: contracts.DefaultCapabilities,
	}
}

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Reads reports how many times ReadEvent was called.
func (s *Source) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}
