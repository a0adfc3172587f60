package wire

// messageLen returns the length of the message started by status,
// or 0 for system exclusive which runs until its end byte.
func messageLen(status byte) int {
	switch {
	case status < 0xC0, status >= 0xE0 && status < 0xF0:
		return 3
	case status < 0xE0:
		return 2
	case status == 0xF0:
		return 0
	case status == 0xF1, status == 0xF3:
		return 2
	case status == 0xF2:
		return 3
	default:
		return 1
	}
}

// Split cuts a packet holding several MIDI messages into single messages.
// Running status is expanded; data bytes with no preceding status are dropped.
// A truncated trailing message is returned as is.
func Split(packet []byte) [][]byte {
	var (
		out     [][]byte
		running byte
	)

	for i := 0; i < len(packet); {
		status := packet[i]
		if status < 0x80 {
			if running == 0 {
				i++
				continue
			}
			n := messageLen(running) - 1
			end := min(i+n, len(packet))
			msg := append([]byte{running}, packet[i:end]...)
			out = append(out, msg)
			i = end
			continue
		}

		n := messageLen(status)
		if n == 0 {
			end := i + 1
			for end < len(packet) && packet[end] != 0xF7 {
				end++
			}
			end = min(end+1, len(packet))
			out = append(out, packet[i:end])
			running = 0
			i = end
			continue
		}

		end := min(i+n, len(packet))
		out = append(out, packet[i:end])
		switch {
		case status < 0xF0:
			running = status
		case status < 0xF8:
			// system common cancels running status, realtime bytes keep it
			running = 0
		}
		i = end
	}
	return out
}

// PushPacket splits packet and queues each message.
func (f *Feed) PushPacket(packet []byte) {
	for _, msg := range Split(packet) {
		f.Push(msg)
	}
}
