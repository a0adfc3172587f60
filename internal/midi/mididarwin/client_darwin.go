//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/youpy/go-coremidi"

	"github.com/leandrodaf/midiseq/internal/midi/wire"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// Error definitions for CoreMIDI connection and handling issues.
var (
	ErrCreateClient        = errors.New("error creating CoreMIDI client")
	ErrListSources         = errors.New("error listing MIDI sources")
	ErrCreateInputPort     = errors.New("error creating input port")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI source")
	ErrPortCapabilities    = errors.New("input port must be writable")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// Source receives events from every CoreMIDI source through one input port.
type Source struct {
	logger    contracts.Logger
	client    coremidi.Client
	inputPort coremidi.InputPort
	mu        sync.Mutex
	conns     []internalPortConnection
	feed      *wire.Feed
	info      contracts.PortInfo
	closeOnce sync.Once
}

// NewEventSource creates the CoreMIDI client and input port and connects the
// port to all sources present at startup.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	if !options.Capabilities.Has(contracts.PortCapWrite) {
		return nil, fmt.Errorf("%w: requested %s", ErrPortCapabilities, options.Capabilities)
	}

	client, err := coremidi.NewClient(options.ClientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateClient, err)
	}
	options.Logger.Info("MIDI client successfully created",
		options.Logger.Field().String("client", options.ClientName))

	s := &Source{
		logger: options.Logger,
		client: client,
		feed:   wire.NewFeed(),
		info: contracts.PortInfo{
			Backend:      "coremidi",
			ClientName:   options.ClientName,
			PortName:     options.PortName,
			Capabilities: options.Capabilities,
		},
	}

	s.inputPort, err = coremidi.NewInputPort(client, options.PortName, s.handleMIDIMessage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInputPort, err)
	}

	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListSources, err)
	}
	if len(sources) == 0 {
		options.Logger.Warn("no MIDI sources found; waiting on an unconnected port")
	}

	for _, source := range sources {
		conn, err := s.inputPort.Connect(source)
		if err != nil {
			s.disconnectAll()
			return nil, fmt.Errorf("%w %s: %w", ErrMIDIConnectionError, source.Name(), err)
		}
		s.conns = append(s.conns, conn)
		options.Logger.Info("MIDI source connected",
			options.Logger.Field().String("source", source.Name()),
			options.Logger.Field().String("manufacturer", source.Entity().Manufacturer()))
	}

	return s, nil
}

// handleMIDIMessage queues every message of an incoming packet.
func (s *Source) handleMIDIMessage(source coremidi.Source, packet coremidi.Packet) {
	s.feed.PushPacket(packet.Data)
}

// ReadEvent blocks until the next event arrives on the port.
func (s *Source) ReadEvent() (contracts.RawEvent, error) {
	return s.feed.Next()
}

// Info describes the input port.
func (s *Source) Info() contracts.PortInfo {
	return s.info
}

// Close disconnects all sources. Calling it more than once is safe.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.logger.Info("Stopping MIDI capture")
		s.feed.Close()
		s.disconnectAll()
	})
	return nil
}

func (s *Source) disconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		conn.Disconnect()
	}
	s.conns = nil
}
