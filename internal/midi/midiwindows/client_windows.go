//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/leandrodaf/midiseq/internal/midi/wire"
	"github.com/leandrodaf/midiseq/sdk/contracts"
)

// Type definitions for MIDI handles
type HMIDIIN windows.Handle

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Error definitions for the WinMM backend.
var (
	ErrNoMIDIDevices    = errors.New("no MIDI input devices found")
	ErrOpenDevice       = errors.New("error opening MIDI input device")
	ErrStartCapture     = errors.New("error starting MIDI input")
	ErrPortCapabilities = errors.New("input port must be writable")
)

// Struct representing MIDI device capabilities
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// Load the winmm.dll library and required functions
var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// callback is created once; the device is looked up through dwInstance.
var callback = windows.NewCallback(midiInCallback)

// Source reads events from one WinMM input device. Windows has no virtual
// ports, so the device whose name contains the port name is used, else device 0.
type Source struct {
	logger    contracts.Logger
	handle    HMIDIIN
	feed      *wire.Feed
	info      contracts.PortInfo
	closeOnce sync.Once
}

// NewEventSource opens and starts the selected input device.
func NewEventSource(options *contracts.ClientOptions) (contracts.EventSource, error) {
	if !options.Capabilities.Has(contracts.PortCapWrite) {
		return nil, fmt.Errorf("%w: requested %s", ErrPortCapabilities, options.Capabilities)
	}

	names := deviceNames(options.Logger)
	if len(names) == 0 {
		return nil, ErrNoMIDIDevices
	}
	deviceID := 0
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), strings.ToLower(options.PortName)) {
			deviceID = i
			break
		}
	}

	s := &Source{
		logger: options.Logger,
		feed:   wire.NewFeed(),
		info: contracts.PortInfo{
			Backend:      "winmm",
			ClientName:   options.ClientName,
			PortName:     names[deviceID],
			Capabilities: options.Capabilities,
		},
	}

	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&s.handle)),
		uintptr(deviceID),
		callback,
		uintptr(unsafe.Pointer(s)),
		uintptr(CALLBACK_FUNCTION|MIDI_IO_STATUS),
	)
	if r1 != 0 {
		return nil, fmt.Errorf("%w %d: %v", ErrOpenDevice, deviceID, err)
	}

	r1, _, err = procMidiInStart.Call(uintptr(s.handle))
	if r1 != 0 {
		procMidiInClose.Call(uintptr(s.handle))
		return nil, fmt.Errorf("%w: %v", ErrStartCapture, err)
	}

	options.Logger.Info("MIDI device connected",
		options.Logger.Field().Int("deviceID", deviceID),
		options.Logger.Field().String("deviceName", names[deviceID]))
	return s, nil
}

// deviceNames lists the input devices by index.
func deviceNames(log contracts.Logger) []string {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)

	names := make([]string, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			log.Warn(fmt.Sprintf("Failed to get information for MIDI device %d", i))
			continue
		}
		names[i] = windows.UTF16ToString(caps.szPname[:])
	}
	return names
}

// midiInCallback processes incoming MIDI messages
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	s := (*Source)(unsafe.Pointer(dwInstance))
	dispatch(s.feed, s.logger, wMsg, dwParam1)
	return 0
}

// ReadEvent blocks until the next event arrives from the device.
func (s *Source) ReadEvent() (contracts.RawEvent, error) {
	return s.feed.Next()
}

// Info describes the opened device.
func (s *Source) Info() contracts.PortInfo {
	return s.info
}

// Close stops capture and closes the device. Calling it more than once is safe.
func (s *Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.feed.Close()

		if r1, _, e := procMidiInStop.Call(uintptr(s.handle)); r1 != 0 {
			err = fmt.Errorf("failed to stop MIDI capture: %v", e)
		}
		if r1, _, e := procMidiInClose.Call(uintptr(s.handle)); r1 != 0 {
			err = errors.Join(err, fmt.Errorf("failed to close MIDI device: %v", e))
		}
		s.handle = 0
		s.logger.Info("MIDI capture stopped and device closed")
	})
	return err
}
