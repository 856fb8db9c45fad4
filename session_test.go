package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFeature(t *testing.T) {
	p, out := newTestPrompter("feature\n24\nno\n01:30:00:00\n24\nno\n01:28:00:00\n")
	s, err := Run(p, &Config{})
	require.NoError(t, err)
	assert.Equal(t, "feature", s.Content)
	assert.Equal(t, []Entry{{Label: "Sequence", Timecode: "01:30:00:00", Frames: 129600}}, s.Entries)
	assert.Equal(t, 129600, s.Total)
	assert.Equal(t, "Over by 00:02:00:00", s.Verdict)
	assert.True(t, strings.HasPrefix(out.String(), "Timecode Calculator/Converter\n"))
	assert.True(t, strings.HasSuffix(out.String(), "Over by 00:02:00:00\n"))
	assert.NotContains(t, out.String(), "Total Run Time")
}

func TestRunTV(t *testing.T) {
	input := strings.Join([]string{
		"TV", "3", "30", "yes",
		"00:10:00:00", "00:12:00:00", "00:08:30:15",
		"30", "yes", "00:30:00:00",
	}, "\n") + "\n"
	p, out := newTestPrompter(input)
	s, err := Run(p, &Config{})
	require.NoError(t, err)
	assert.Equal(t, "tv", s.Content)
	require.Len(t, s.Entries, 3)
	assert.Equal(t, "Act 2", s.Entries[1].Label)
	assert.Equal(t, 21578, s.Entries[1].Frames)
	assert.Equal(t, 54859, s.Total)
	assert.Equal(t, "00:30:30:13", s.TRT())
	assert.Contains(t, out.String(), "Enter the timecode for act 3 (HH:MM:SS:FF or MM:SS:FF): ")
	assert.Contains(t, out.String(), "Total Run Time (TRT) of all acts: 00:30:30:13\n")
	assert.Equal(t, "Over by 00:00:30:13", s.Verdict)
}

func TestRunUsesConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("testdata/config.toml", true)
	require.NoError(t, err)
	p, out := newTestPrompter("feature\n\n\n\n\n\n\n")
	s, err := Run(p, cfg)
	require.NoError(t, err)
	assert.Equal(t, 24, s.CurrentRate)
	assert.False(t, s.CurrentDrop)
	assert.Equal(t, 30, s.DeliveryRate)
	assert.True(t, s.DeliveryDrop)
	assert.Equal(t, "01:28:00:00", s.Target)
	assert.Equal(t, "Under by 00:15:55:18", s.Verdict)
	assert.Contains(t, out.String(), "Enter the delivery frame rate (e.g., 24, 25, 30) [30]: ")
	assert.Contains(t, out.String(), "Is the delivery timecode drop frame? (yes/no) [yes]: ")
}

func TestRunRetriesContentType(t *testing.T) {
	p, out := newTestPrompter("movie\nfeature\n25\nno\n00:00:30:00\n25\nno\n00:00:30:00\n")
	s, err := Run(p, &Config{})
	require.NoError(t, err)
	assert.Equal(t, "Exact duration", s.Verdict)
	assert.Contains(t, out.String(), "Invalid input: Please enter 'feature' or 'tv'. Please try again.")
}

func TestRunEndOfInput(t *testing.T) {
	p, _ := newTestPrompter("tv\n2\n24\nno\n00:10:00:00\n")
	s, err := Run(p, &Config{})
	assert.Error(t, err)
	assert.Nil(t, s)
}
