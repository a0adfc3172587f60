package contracts

// Message is one classified event or debug note travelling through the capture pipeline.
// The set of implementations is closed: Debug, Note, NoteOn, NoteOff, Ctrl, Pitch, Other and Failure.
type Message interface {
	// Label names the variant in log output.
	Label() string
	// Payload renders the carried value.
	Payload() string

	isMessage()
}

// Debug is a free-form diagnostic note.
type Debug struct {
	Text string
}

// Note is a note event with duration.
type Note struct {
	Event NoteEvent
}

// NoteOn is a note-on event.
type NoteOn struct {
	Event NoteEvent
}

// NoteOff is a note-off event.
type NoteOff struct {
	Event NoteEvent
}

// Ctrl is a control change.
type Ctrl struct {
	Event ControlEvent
}

// Pitch is a pitch bend.
type Pitch struct {
	Event ControlEvent
}

// Other carries only the kind tag of an event with no extracted payload.
type Other struct {
	Kind EventKind
}

// Failure reports that event capture stopped on a fatal source error.
// It is always the last message a producer sends.
type Failure struct {
	Err error
}

func (Debug) Label() string   { return "Debug" }
func (Note) Label() string    { return "Note" }
func (NoteOn) Label() string  { return "NoteOn" }
func (NoteOff) Label() string { return "NoteOff" }
func (Ctrl) Label() string    { return "Ctrl" }
func (Pitch) Label() string   { return "Pitch" }
func (Other) Label() string   { return "Other" }
func (Failure) Label() string { return "Error" }

func (m Debug) Payload() string   { return m.Text }
func (m Note) Payload() string    { return m.Event.String() }
func (m NoteOn) Payload() string  { return m.Event.String() }
func (m NoteOff) Payload() string { return m.Event.String() }
func (m Ctrl) Payload() string    { return m.Event.String() }
func (m Pitch) Payload() string   { return m.Event.String() }
func (m Other) Payload() string   { return m.Kind.String() }

func (m Failure) Payload() string {
	if m.Err == nil {
		return "<nil>"
	}
	return m.Err.Error()
}

func (Debug) isMessage()   {}
func (Note) isMessage()    {}
func (NoteOn) isMessage()  {}
func (NoteOff) isMessage() {}
func (Ctrl) isMessage()    {}
func (Pitch) isMessage()   {}
func (Other) isMessage()   {}
func (Failure) isMessage() {}
