package timecode

import "fmt"

// Timecode is a frame position at a frame rate.
// The zero value isn't usable, create one with New or FromFrames.
type Timecode struct {
	rate  int
	drop  bool
	frame int
}

// New parses code into a Timecode.
func New(code string, rate int, drop bool) (Timecode, error) {
	if rate <= 0 {
		return Timecode{}, fmt.Errorf("frame rate must be positive: %v", rate)
	}
	frame, err := Parse(code, rate, drop)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{rate: rate, drop: drop, frame: frame}, nil
}

// FromFrames creates a Timecode at an absolute frame count.
func FromFrames(frame, rate int, drop bool) Timecode {
	return Timecode{rate: rate, drop: drop, frame: frame}
}

// Frames returns the absolute frame count.
func (t Timecode) Frames() int { return t.frame }

// Rate returns the frame rate.
func (t Timecode) Rate() int { return t.rate }

// DropFrame reports whether the Timecode counts in drop frame.
// It is false for every rate other than 30, whatever drop flag was given.
func (t Timecode) DropFrame() bool { return t.Mode() == DropFrame30 }

// Mode returns the counting mode.
func (t Timecode) Mode() Mode { return ModeOf(t.rate, t.drop) }

// Add returns the Timecode n frames later.
func (t Timecode) Add(n int) Timecode {
	t.frame += n
	return t
}

// String represents the Timecode as HH:MM:SS:FF.
func (t Timecode) String() string {
	return Format(t.frame, t.rate, t.drop)
}
