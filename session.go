package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/kzmdstu/tccalc/timecode"
)

// Entry is a timecode entered for the current cut.
type Entry struct {
	Label    string
	Timecode string
	Frames   int
}

// Session is the outcome of one calculator run.
type Session struct {
	Content string // "feature" or "tv"

	CurrentRate int
	CurrentDrop bool
	Entries     []Entry
	Total       int

	DeliveryRate int
	DeliveryDrop bool
	Target       string
	Verdict      string
}

// TRT is the total frames of the current cut as a timecode.
func (s *Session) TRT() string {
	return timecode.Format(s.Total, s.CurrentRate, s.CurrentDrop)
}

// Run asks every question of a calculator session and prints the results.
func Run(p *Prompter, cfg *Config) (*Session, error) {
	fmt.Fprintln(p.out, "Timecode Calculator/Converter")
	s := &Session{}
	var err error
	s.Content, err = p.Choice("Is this a Feature Film or a TV Show? (feature/tv): ", "", "feature", "tv")
	if err != nil {
		return nil, err
	}
	acts := 1
	if s.Content == "tv" {
		acts, err = p.Positive("How many acts are there? ", 0, "Please enter a positive integer for the number of acts.")
		if err != nil {
			return nil, err
		}
	}
	s.CurrentRate, err = p.FrameRate("Enter the current frame rate (e.g., 24, 25, 30): ", cfg.Current.Rate)
	if err != nil {
		return nil, err
	}
	s.CurrentDrop, err = p.DropFrame("Is the current timecode drop frame? (yes/no): ", cfg.Current.Drop)
	if err != nil {
		return nil, err
	}
	if s.Content == "feature" {
		code, err := p.Timecode("Enter the current sequence timecode (HH:MM:SS:FF or MM:SS:FF): ", cfg.Current.Duration)
		if err != nil {
			return nil, err
		}
		if err := s.add("Sequence", code); err != nil {
			return nil, err
		}
	} else {
		for i := 1; i <= acts; i++ {
			q := fmt.Sprintf("Enter the timecode for act %d (HH:MM:SS:FF or MM:SS:FF): ", i)
			code, err := p.Timecode(q, "")
			if err != nil {
				return nil, err
			}
			if err := s.add("Act "+strconv.Itoa(i), code); err != nil {
				return nil, err
			}
		}
	}
	s.Total, err = timecode.Sum(s.codes(), s.CurrentRate, s.CurrentDrop)
	if err != nil {
		return nil, err
	}
	if s.Content == "tv" {
		fmt.Fprintf(p.out, "Total Run Time (TRT) of all acts: %v\n", s.TRT())
	}
	s.DeliveryRate, err = p.FrameRate("Enter the delivery frame rate (e.g., 24, 25, 30): ", cfg.Delivery.Rate)
	if err != nil {
		return nil, err
	}
	s.DeliveryDrop, err = p.DropFrame("Is the delivery timecode drop frame? (yes/no): ", cfg.Delivery.Drop)
	if err != nil {
		return nil, err
	}
	s.Target, err = p.Timecode("Enter the target duration timecode (HH:MM:SS:FF or MM:SS:FF): ", cfg.Delivery.Duration)
	if err != nil {
		return nil, err
	}
	s.Verdict, err = timecode.Overrun(s.Total, s.DeliveryRate, s.Target, s.DeliveryDrop)
	if err != nil {
		// Target was validated by the prompt, so this shouldn't happen.
		fmt.Fprintf(p.out, "Error: %v. Please try again.\n", err)
		return s, err
	}
	fmt.Fprintln(p.out, s.Verdict)
	return s, nil
}

func (s *Session) add(label, code string) error {
	n, err := timecode.Parse(code, s.CurrentRate, s.CurrentDrop)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"timecode": code,
		"frames":   n,
		"mode":     timecode.ModeOf(s.CurrentRate, s.CurrentDrop),
	}).Debug(label)
	s.Entries = append(s.Entries, Entry{Label: label, Timecode: code, Frames: n})
	return nil
}

func (s *Session) codes() []string {
	codes := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		codes[i] = e.Timecode
	}
	return codes
}
