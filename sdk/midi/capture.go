package midi

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leandrodaf/midiseq/internal/eventlog"
	"github.com/leandrodaf/midiseq/internal/pipeline"
	"github.com/leandrodaf/midiseq/internal/translator"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// StartupGreeting is the debug note sent once when capture starts.
const StartupGreeting = "Hello, world!"

// ErrCaptureFailed wraps the fatal error that stopped event capture.
var ErrCaptureFailed = errors.New("event capture failed")

// Capture opens the sequencer input port and logs every event it receives.
// It returns only when capture stops, with an error wrapping ErrCaptureFailed
// when the port failed, or the open error when the port could not be created.
func Capture(opts ...contracts.Option) error {
	start := time.Now()

	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return err
	}
	log := options.Logger
	defer log.Sync()

	source, err := NewClient(&options)
	if err != nil {
		log.Error("Failed to open sequencer input port", log.Field().Error("error", err))
		return err
	}
	defer source.Close()

	session := uuid.New()
	info := source.Info()
	log.Info("Capturing sequencer events",
		log.Field().String("session", session.String()),
		log.Field().String("backend", info.Backend),
		log.Field().String("client", info.ClientName),
		log.Field().String("port", info.PortName),
		log.Field().String("capabilities", info.Capabilities.String()))

	err = Run(source, log, start)
	if err != nil {
		log.Error("Capture stopped", log.Field().String("session", session.String()), log.Field().Error("error", err))
	}
	return err
}

// Run connects source to an event logger through one channel and blocks
// until both producers are done: the greeting producer and the translator
// reading source. Elapsed times are measured from start.
func Run(source contracts.EventSource, log contracts.Logger, start time.Time) error {
	tx, rx := pipeline.New[contracts.Message]()

	greeter := tx.Clone()
	go func() {
		defer greeter.Close()
		_ = greeter.Send(contracts.Debug{Text: StartupGreeting})
	}()

	reader := tx.Clone()
	go func() {
		defer reader.Close()
		if err := translator.New(source, reader, log).Run(); err != nil {
			_ = reader.Send(contracts.Failure{Err: err})
		}
	}()

	tx.Close()

	if err := eventlog.New(start, log).Run(rx.All()); err != nil {
		return fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	return nil
}
