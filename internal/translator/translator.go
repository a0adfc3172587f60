package translator

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiseq/internal/pipeline"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

var (
	// ErrMalformedPayload is returned when a recognized event kind lacks its payload.
	ErrMalformedPayload = errors.New("malformed event payload")
	// ErrReadEvent wraps failures of the event source.
	ErrReadEvent = errors.New("error reading sequencer event")
	// ErrSinkClosed is returned when the message channel no longer accepts messages.
	ErrSinkClosed = errors.New("message sink closed")
)

// Translate converts one driver event into its Message.
func Translate(ev contracts.RawEvent) (contracts.Message, error) {
	switch ev.Kind {
	case contracts.KindNote, contracts.KindNoteOn, contracts.KindNoteOff:
		if ev.Note == nil {
			return nil, fmt.Errorf("%w: %s event without note data", ErrMalformedPayload, ev.Kind)
		}
		switch ev.Kind {
		case contracts.KindNote:
			return contracts.Note{Event: *ev.Note}, nil
		case contracts.KindNoteOn:
			return contracts.NoteOn{Event: *ev.Note}, nil
		default:
			return contracts.NoteOff{Event: *ev.Note}, nil
		}
	case contracts.KindController, contracts.KindPitchbend:
		if ev.Control == nil {
			return nil, fmt.Errorf("%w: %s event without control data", ErrMalformedPayload, ev.Kind)
		}
		if ev.Kind == contracts.KindController {
			return contracts.Ctrl{Event: *ev.Control}, nil
		}
		return contracts.Pitch{Event: *ev.Control}, nil
	default:
		return contracts.Other{Kind: ev.Kind}, nil
	}
}

// Translator reads events from a source and sends one Message per event.
type Translator struct {
	source contracts.EventSource
	sink   *pipeline.Sender[contracts.Message]
	logger contracts.Logger
}

// New creates a Translator. The caller keeps ownership of sink and closes it.
func New(source contracts.EventSource, sink *pipeline.Sender[contracts.Message], logger contracts.Logger) *Translator {
	return &Translator{source: source, sink: sink, logger: logger}
}

// Run loops until the source fails. It returns nil when the source was closed
// and otherwise the error that stopped it. Nothing is sent for the failing event.
func (t *Translator) Run() error {
	for {
		ev, err := t.source.ReadEvent()
		if errors.Is(err, contracts.ErrSourceClosed) {
			t.logger.Debug("Event source closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadEvent, err)
		}

		msg, err := Translate(ev)
		if err != nil {
			return err
		}

		if err := t.sink.Send(msg); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkClosed, err)
		}
	}
}
