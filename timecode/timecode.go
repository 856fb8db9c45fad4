// Package timecode converts between timecode strings and frame counts.
//
// Two counting modes exist: plain non-drop counting for any integer frame
// rate, and SMPTE drop frame counting, which is only applied to 30 fps.
// See introduction of drop frame timecode system at http://andrewduncan.net/timecodes/
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a timecode string isn't HH:MM:SS:FF or MM:SS:FF.
var ErrInvalidFormat = errors.New("Invalid timecode format. Please use HH:MM:SS:FF or MM:SS:FF.")

// drop frame constants for base 30.
const (
	dropFramesPerHour      = 107892 // 30*3600 - 108
	dropFramesPer10Minutes = 17982  // 30*600 - 18
	dropFramesPerMinute    = 1798   // 30*60 - 2
)

// Mode is a frame counting mode.
type Mode int

const (
	NonDrop Mode = iota
	DropFrame30
)

func (m Mode) String() string {
	if m == DropFrame30 {
		return "drop frame"
	}
	return "non-drop frame"
}

// ModeOf picks the counting mode for a frame rate and drop flag.
// The drop flag is ignored for any rate other than 30.
func ModeOf(rate int, drop bool) Mode {
	if drop && rate == 30 {
		return DropFrame30
	}
	return NonDrop
}

// Parse converts a timecode to the total number of frames.
// Fields are not range checked, "00:75:00:00" is 75 minutes.
func Parse(code string, rate int, drop bool) (int, error) {
	parts := strings.Split(code, ":")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, ErrInvalidFormat
	}
	codes := [4]int{}
	// MM:SS:FF leaves hours at 0.
	off := 4 - len(parts)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, ErrInvalidFormat
		}
		codes[off+i] = n
	}
	h := codes[0]
	m := codes[1]
	s := codes[2]
	f := codes[3]
	frame := (3600*h+60*m+s)*rate + f
	if ModeOf(rate, drop) == DropFrame30 {
		// two frames dropped every minute, except every 10th minute.
		totalMinutes := 60*h + m
		frame -= 2 * (totalMinutes - totalMinutes/10)
	}
	return frame, nil
}

// Validate checks only the shape of a timecode.
func Validate(code string) error {
	_, err := Parse(code, 30, false)
	return err
}

// Format converts a total number of frames to a HH:MM:SS:FF timecode.
// rate must be positive. Negative frames are split with floor division.
func Format(frames, rate int, drop bool) string {
	var h, m, s, f int
	if ModeOf(rate, drop) == DropFrame30 {
		h = floorDiv(frames, dropFramesPerHour)
		rem := floorMod(frames, dropFramesPerHour)
		m = rem / dropFramesPer10Minutes * 10
		rem %= dropFramesPer10Minutes
		for rem >= dropFramesPerMinute {
			rem -= dropFramesPerMinute
			m++
		}
		s = rem / rate
		f = rem % rate
	} else {
		f = floorMod(frames, rate)
		totalSeconds := floorDiv(frames, rate)
		s = floorMod(totalSeconds, 60)
		totalMinutes := floorDiv(totalSeconds, 60)
		m = floorMod(totalMinutes, 60)
		h = floorDiv(totalMinutes, 60)
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d", h, m, s, f)
}

// Overrun reports how far current frames are from the target duration.
// The difference is expressed in the target's rate and drop setting.
func Overrun(current, rate int, target string, drop bool) (string, error) {
	want, err := Parse(target, rate, drop)
	if err != nil {
		return "", err
	}
	d := current - want
	switch {
	case d > 0:
		return "Over by " + Format(d, rate, drop), nil
	case d < 0:
		return "Under by " + Format(-d, rate, drop), nil
	default:
		return "Exact duration", nil
	}
}

// Sum adds up the frames of every timecode, as for a TRT of acts.
func Sum(codes []string, rate int, drop bool) (int, error) {
	total := 0
	for _, c := range codes {
		n, err := Parse(c, rate, drop)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a remainder with the sign of b.
func floorMod(a, b int) int {
	r := a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}
