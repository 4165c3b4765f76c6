package field

import "strings"

// Mode selects which rendering behavior a field type uses for one render
// call. The empty mode means unset.
type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
)

// ParseMode normalises a raw mode string to its canonical identifier form.
func ParseMode(raw string) Mode {
	return Mode(strings.ToLower(strings.TrimSpace(raw)))
}

// IsSet reports whether the mode carries a value.
func (m Mode) IsSet() bool { return m != "" }

func (m Mode) String() string { return string(m) }
