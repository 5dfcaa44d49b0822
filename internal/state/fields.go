package state

import (
	"strconv"
)

// ParseChannel reads an unsigned decimal color channel as typed into a
// panel field. It returns the channel value and the text the field should
// show afterwards: values above 255 clamp to "255", anything unparseable
// resets to "0", and valid input is echoed back untouched.
func ParseChannel(text string) (value uint8, echo string, ok bool) {
	u, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, "0", false
	}
	if u > 255 {
		return 255, "255", true
	}
	return uint8(u), text, true
}

// ParseSize reads a signed decimal brush size.
func ParseSize(text string) (int, bool) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// CommitChannel applies a channel field's text to the color and returns
// the text the field should display. Unparseable input resets only that
// channel to zero.
func (s *Shared) CommitChannel(ch Channel, text string) string {
	v, echo, _ := ParseChannel(text)
	s.Color.SetChannel(ch, v)
	return echo
}

// CommitSize applies a size field's text. Invalid input leaves the size
// and the field text unchanged and reports false.
func (s *Shared) CommitSize(text string) (string, bool) {
	n, ok := ParseSize(text)
	if !ok {
		return text, false
	}
	s.Size.Set(n)
	return text, true
}
