package contracts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		" warn ":  WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
		"Fatal":   FatalLevel,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("trace")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "warn", WarnLevel.String())
	assert.Equal(t, "LogLevel(0)", LogLevel(0).String())
}

func TestMessage_LabelsAndPayloads(t *testing.T) {
	note := NoteEvent{Channel: 1, Note: 60, Velocity: 100}
	ctrl := ControlEvent{Channel: 3, Param: 10, Value: -5}

	tests := []struct {
		msg     Message
		label   string
		payload string
	}{
		{Debug{Text: "Hello, world!"}, "Debug", "Hello, world!"},
		{Note{Event: note}, "Note", note.String()},
		{NoteOn{Event: note}, "NoteOn", "NoteEvent{Channel: 1, Note: 60, Velocity: 100, OffVelocity: 0, Duration: 0}"},
		{NoteOff{Event: note}, "NoteOff", note.String()},
		{Ctrl{Event: ctrl}, "Ctrl", "ControlEvent{Channel: 3, Param: 10, Value: -5}"},
		{Pitch{Event: ctrl}, "Pitch", ctrl.String()},
		{Other{Kind: KindSensing}, "Other", "Sensing"},
		{Failure{Err: errors.New("gone")}, "Error", "gone"},
		{Failure{}, "Error", "<nil>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.msg.Label())
		assert.Equal(t, tt.payload, tt.msg.Payload())
	}
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "Noteon", KindNoteOn.String())
	assert.Equal(t, "Pitchbend", KindPitchbend.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
	assert.Equal(t, "EventKind(200)", EventKind(200).String())
}

func TestPortCapability(t *testing.T) {
	assert.Equal(t, "WRITE|SUBS_WRITE", DefaultCapabilities.String())
	assert.Equal(t, "WRITE", PortCapWrite.String())
	assert.Equal(t, "NONE", PortCapability(0).String())
	assert.True(t, DefaultCapabilities.Has(PortCapWrite))
	assert.False(t, PortCapSubsWrite.Has(PortCapWrite))
}

func TestClientOptions_Validate(t *testing.T) {
	ok := ClientOptions{ClientName: DefaultClientName, PortName: DefaultPortName}
	assert.NoError(t, ok.Validate())

	badClient := ClientOptions{ClientName: "J\x00", PortName: "Input"}
	assert.ErrorIs(t, badClient.Validate(), ErrNameEncoding)

	badPort := ClientOptions{ClientName: "JSeq", PortName: "\x00"}
	err := badPort.Validate()
	assert.ErrorIs(t, err, ErrNameEncoding)
	assert.Contains(t, err.Error(), "port name")
}
