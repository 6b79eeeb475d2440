package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackerStats(t *testing.T) {
	tt := NewTracker()
	tt.Record("export", 10*time.Millisecond)
	tt.Record("export", 30*time.Millisecond)
	tt.Record("decode", 5*time.Millisecond)

	s := tt.Stats("export")
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 40*time.Millisecond, s.Total)
	assert.Equal(t, 20*time.Millisecond, s.Average)
	assert.Equal(t, 30*time.Millisecond, s.Max)

	assert.Equal(t, []string{"decode", "export"}, tt.Operations())
	assert.Zero(t, tt.Stats("missing").Count)
}

func TestTrackerStartRecords(t *testing.T) {
	tt := NewTracker()
	stop := tt.Start("decode")
	d := stop()

	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, 1, tt.Stats("decode").Count)
}

func TestTrackerDisabledAndReset(t *testing.T) {
	tt := NewTracker()
	tt.SetEnabled(false)
	tt.Record("export", time.Second)
	assert.Empty(t, tt.Operations())

	tt.SetEnabled(true)
	tt.Record("export", time.Second)
	tt.Record("decode", time.Second)
	tt.Reset("export")
	assert.Equal(t, []string{"decode"}, tt.Operations())
	tt.Reset("")
	assert.Empty(t, tt.Operations())
}
