//go:build linux
// +build linux

package midilinux

import (
	"errors"
	"fmt"
	"sync"

	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv/imported/rtmidi"

	"github.com/leandrodaf/midiseq/internal/midi/wire"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// queueSize bounds rtmidi's own queue, which is unused while a callback is set.
const queueSize = 1024

// rtmidiPort adapts rtmidi.MIDIIn to inputPort.
type rtmidiPort struct {
	rtmidi.MIDIIn
}

func (p rtmidiPort) SetCallback(cb func(msg []byte)) error {
	return p.MIDIIn.SetCallback(func(_ rtmidi.MIDIIn, msg []byte, _ float64) {
		cb(msg)
	})
}

// Source reads events from a virtual ALSA sequencer input port that other
// clients can subscribe to.
type Source struct {
	logger    contracts.Logger
	in        inputPort
	feed      *wire.Feed
	info      contracts.PortInfo
	closeOnce sync.Once
}

// NewEventSource opens a sequencer client named options.ClientName and creates
// the input port options.PortName on it.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	if !options.Capabilities.Has(contracts.PortCapWrite) {
		return nil, fmt.Errorf("%w: requested %s", ErrPortCapabilities, options.Capabilities)
	}

	midiIn, err := rtmidi.NewMIDIIn(rtmidi.APILinuxALSA, options.ClientName, queueSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenSequencer, err)
	}
	in := rtmidiPort{midiIn}

	s := &Source{
		logger: options.Logger,
		in:     in,
		feed:   wire.NewFeed(),
		info: contracts.PortInfo{
			Backend:      "alsa",
			ClientName:   options.ClientName,
			PortName:     options.PortName,
			Capabilities: options.Capabilities,
		},
	}

	if err := listen(in, options.PortName, s.feed); err != nil {
		in.Close()
		return nil, err
	}

	options.Logger.Info("ALSA sequencer port created",
		options.Logger.Field().String("client", options.ClientName),
		options.Logger.Field().String("port", options.PortName))
	return s, nil
}

// ReadEvent blocks until the next event arrives on the port.
func (s *Source) ReadEvent() (contracts.RawEvent, error) {
	return s.feed.Next()
}

// Info describes the input port.
func (s *Source) Info() contracts.PortInfo {
	return s.info
}

// Close stops listening and releases the sequencer. Calling it more than once is safe.
func (s *Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.feed.Close()
		err = errors.Join(s.in.CancelCallback(), s.in.Close())
		s.logger.Info("ALSA sequencer port closed")
	})
	return err
}
