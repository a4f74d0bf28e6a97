package app

// Mode selects how goesproc interprets its input paths.
type Mode int

const (
	// ModeUndefined is the zero value. It is never valid after validation.
	ModeUndefined Mode = iota
	// ModePacket processes a stream of VCDU packets.
	ModePacket
	// ModeLrit processes pre-assembled LRIT files.
	ModeLrit
)

// ParseMode maps the literal mode names accepted on the command line. The
// match is exact and case-sensitive.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "packet":
		return ModePacket, true
	case "lrit":
		return ModeLrit, true
	default:
		return ModeUndefined, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModePacket:
		return "packet"
	case ModeLrit:
		return "lrit"
	default:
		return "undefined"
	}
}
