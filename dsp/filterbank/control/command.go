package control

// Data symbols of a command triple.
const (
	DataUp       = 'u'
	DataDown     = 'd'
	DataToggle   = 't'
	DataSnapshot = 'J'
)

// DefaultID is the mode symbol a Surface answers to by default.
const DefaultID = 'f'

// Command is one decoded control triple.
type Command struct {
	Mode    byte // selects the surface
	Channel byte // boundary or band index symbol
	Data    byte // action
}

// ParseCommand reads a command from the first three bytes of b.
func ParseCommand(b []byte) (Command, bool) {
	if len(b) < 3 {
		return Command{}, false
	}
	return Command{Mode: b[0], Channel: b[1], Data: b[2]}, true
}

// ChannelIndex maps a channel symbol to an index: '0'-'9' are 0-9 and
// 'A'-'Z' continue at 10.
func ChannelIndex(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// ChannelSymbol is the inverse of ChannelIndex.
func ChannelSymbol(i int) (byte, bool) {
	switch {
	case i >= 0 && i <= 9:
		return byte('0' + i), true
	case i >= 10 && i < 36:
		return byte('A' + i - 10), true
	default:
		return 0, false
	}
}
