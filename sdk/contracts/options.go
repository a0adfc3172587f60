package contracts

import (
	"errors"
	"fmt"
	"strings"
)

// Default names the capture client registers with the sequencer.
const (
	DefaultClientName = "JSeq"
	DefaultPortName   = "Input"
)

// DefaultCapabilities is a writable input port accepting external subscriptions.
const DefaultCapabilities = PortCapWrite | PortCapSubsWrite

// ErrNameEncoding is returned when a client or port name cannot be passed to the driver.
var ErrNameEncoding = errors.New("name contains an embedded NUL byte")

// ClientOptions defines the configuration options for the capture client.
type ClientOptions struct {
	Logger       Logger         // Logger for captured events and diagnostics.
	LogLevel     LogLevel       // Level of logging to use.
	ClientName   string         // Name of the sequencer client.
	PortName     string         // Name of the input port.
	Capabilities PortCapability // Capabilities requested for the input port.
}

// Validate checks that the names can be handed to a C string based driver API.
func (o *ClientOptions) Validate() error {
	if strings.IndexByte(o.ClientName, 0) >= 0 {
		return fmt.Errorf("%w: client name %q", ErrNameEncoding, o.ClientName)
	}
	if strings.IndexByte(o.PortName, 0) >= 0 {
		return fmt.Errorf("%w: port name %q", ErrNameEncoding, o.PortName)
	}
	return nil
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the capture client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level, overriding the environment.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithClientName sets the sequencer client name.
func WithClientName(name string) Option {
	return func(opts *ClientOptions) {
		opts.ClientName = name
	}
}

// WithPortName sets the input port name.
func WithPortName(name string) Option {
	return func(opts *ClientOptions) {
		opts.PortName = name
	}
}

// WithCapabilities sets the capabilities requested for the input port.
func WithCapabilities(caps PortCapability) Option {
	return func(opts *ClientOptions) {
		opts.Capabilities = caps
	}
}
