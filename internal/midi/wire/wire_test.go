package wire

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leandrodaf/midiseq/sdk/contracts"
)

func TestDecode_ChannelVoice(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    contracts.EventKind
		note    *contracts.NoteEvent
		control *contracts.ControlEvent
	}{
		{
			name: "note on",
			data: []byte{0x91, 60, 100},
			want: contracts.KindNoteOn,
			note: &contracts.NoteEvent{Channel: 1, Note: 60, Velocity: 100},
		},
		{
			name: "note off",
			data: []byte{0x83, 64, 40},
			want: contracts.KindNoteOff,
			note: &contracts.NoteEvent{Channel: 3, Note: 64, Velocity: 40},
		},
		{
			name:    "controller",
			data:    []byte{0xB2, 7, 127},
			want:    contracts.KindController,
			control: &contracts.ControlEvent{Channel: 2, Param: 7, Value: 127},
		},
		{
			name:    "pitch bend centre",
			data:    []byte{0xE0, 0x00, 0x40},
			want:    contracts.KindPitchbend,
			control: &contracts.ControlEvent{Channel: 0, Param: 0, Value: 0},
		},
		{
			name:    "pitch bend max",
			data:    []byte{0xE5, 0x7F, 0x7F},
			want:    contracts.KindPitchbend,
			control: &contracts.ControlEvent{Channel: 5, Param: 0, Value: 8191},
		},
		{
			name:    "program change",
			data:    []byte{0xC4, 12},
			want:    contracts.KindProgramChange,
			control: &contracts.ControlEvent{Channel: 4, Value: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Decode(tt.data)
			assert.Equal(t, tt.want, ev.Kind)
			assert.Equal(t, tt.note, ev.Note)
			assert.Equal(t, tt.control, ev.Control)
		})
	}
}

func TestDecode_ShortMessagesHaveNoPayload(t *testing.T) {
	for _, data := range [][]byte{{0x90, 60}, {0x80}, {0xB0, 1}, {0xE0, 0}} {
		ev := Decode(data)
		assert.NotEqual(t, contracts.KindUnknown, ev.Kind, "% X", data)
		assert.Nil(t, ev.Note, "% X", data)
		assert.Nil(t, ev.Control, "% X", data)
	}
}

func TestDecode_SystemMessages(t *testing.T) {
	tests := map[byte]contracts.EventKind{
		0xF8: contracts.KindClock,
		0xFA: contracts.KindStart,
		0xFB: contracts.KindContinue,
		0xFC: contracts.KindStop,
		0xFE: contracts.KindSensing,
		0xFF: contracts.KindReset,
		0xF6: contracts.KindTuneRequest,
		0xF9: contracts.KindUnknown,
	}
	for status, want := range tests {
		assert.Equal(t, want, Decode([]byte{status}).Kind, "status 0x%X", status)
	}
	assert.Equal(t, contracts.KindSysex, Decode([]byte{0xF0, 0x7E, 0x7F, 0xF7}).Kind)
	assert.Equal(t, contracts.KindUnknown, Decode(nil).Kind)
	assert.Equal(t, contracts.KindUnknown, Decode([]byte{0x40, 0x10}).Kind)
}

func TestFeed_DeliversInOrderThenError(t *testing.T) {
	f := NewFeed()
	boom := errors.New("driver went away")

	f.Push([]byte{0x90, 60, 100})
	f.Push(nil)
	f.Push([]byte{0xF8})
	f.Fail(boom)

	ev, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, contracts.KindNoteOn, ev.Kind)

	ev, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, contracts.KindClock, ev.Kind)

	_, err = f.Next()
	assert.ErrorIs(t, err, boom)
}

func TestFeed_PushCopiesBuffer(t *testing.T) {
	f := NewFeed()
	buf := []byte{0x90, 60, 100}
	f.Push(buf)
	buf[1] = 0

	ev, err := f.Next()
	require.NoError(t, err)
	require.NotNil(t, ev.Note)
	assert.Equal(t, uint8(60), ev.Note.Note)
}

func TestFeed_CloseWakesBlockedNext(t *testing.T) {
	f := NewFeed()
	errc := make(chan error, 1)
	go func() {
		_, err := f.Next()
		errc <- err
	}()

	time.Sleep(20 * time.Millisecond)
	f.Close()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, contracts.ErrSourceClosed)
	case <-time.After(time.Second):
		t.Fatal("Next did not return after Close")
	}

	f.Push([]byte{0x90, 1, 1})
	_, err := f.Next()
	assert.ErrorIs(t, err, contracts.ErrSourceClosed)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		packet []byte
		want   [][]byte
	}{
		{"single", []byte{0x90, 60, 100}, [][]byte{{0x90, 60, 100}}},
		{
			"mixed lengths",
			[]byte{0x90, 60, 100, 0xC1, 5, 0xF8, 0xB0, 7, 99},
			[][]byte{{0x90, 60, 100}, {0xC1, 5}, {0xF8}, {0xB0, 7, 99}},
		},
		{
			"running status",
			[]byte{0x90, 60, 100, 62, 90, 64, 0},
			[][]byte{{0x90, 60, 100}, {0x90, 62, 90}, {0x90, 64, 0}},
		},
		{
			"realtime inside running status",
			[]byte{0x90, 60, 100, 0xF8, 62, 90},
			[][]byte{{0x90, 60, 100}, {0xF8}, {0x90, 62, 90}},
		},
		{
			"sysex",
			[]byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7, 0xFA},
			[][]byte{{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7}, {0xFA}},
		},
		{"orphan data", []byte{0x10, 0x20, 0xFC}, [][]byte{{0xFC}}},
		{"truncated", []byte{0xB0, 7}, [][]byte{{0xB0, 7}}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.packet))
		})
	}
}

func TestFeed_PushPacket(t *testing.T) {
	f := NewFeed()
	f.PushPacket([]byte{0x91, 60, 100, 0xB1, 64, 127})

	ev, err := f.Next()
	require.NoError(t, err)
	assert.Equal(t, contracts.KindNoteOn, ev.Kind)
	ev, err = f.Next()
	require.NoError(t, err)
	assert.Equal(t, contracts.KindController, ev.Kind)
	assert.Equal(t, &contracts.ControlEvent{Channel: 1, Param: 64, Value: 127}, ev.Control)
}
