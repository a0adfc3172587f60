package wire

import (
	"github.com/leandrodaf/midiseq/internal/pipeline"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

type item struct {
	event contracts.RawEvent
	err   error
}

// Feed bridges callback based drivers to the blocking ReadEvent contract.
// Push and Fail never block, so they are safe to call from driver callbacks.
type Feed struct {
	tx *pipeline.Sender[item]
	rx *pipeline.Receiver[item]
}

// NewFeed returns an empty, open Feed.
func NewFeed() *Feed {
	tx, rx := pipeline.New[item]()
	return &Feed{tx: tx, rx: rx}
}

// Push decodes one MIDI message and queues it. Empty messages are ignored.
func (f *Feed) Push(data []byte) {
	if len(data) == 0 {
		return
	}
	// the driver may reuse its buffer after the callback returns
	buf := make([]byte, len(data))
	copy(buf, data)
	_ = f.tx.Send(item{event: Decode(buf)})
}

// Fail queues a driver error; Next returns it after the events queued before it.
func (f *Feed) Fail(err error) {
	_ = f.tx.Send(item{err: err})
}

// Next blocks until an event or error is queued, or the feed is closed.
func (f *Feed) Next() (contracts.RawEvent, error) {
	it, ok := f.rx.Recv()
	if !ok {
		return contracts.RawEvent{}, contracts.ErrSourceClosed
	}
	if it.err != nil {
		return contracts.RawEvent{}, it.err
	}
	return it.event, nil
}

// Close discards queued events and wakes a blocked Next.
func (f *Feed) Close() {
	f.rx.Close()
	f.tx.Close()
}
