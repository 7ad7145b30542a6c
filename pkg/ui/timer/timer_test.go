package timer_test

import (
	"testing"
	"time"

	"github.com/devantler-tech/valdedup/pkg/ui/timer"
	"github.com/stretchr/testify/assert"
)

func TestTimerTracksTotalAndStage(t *testing.T) {
	t.Parallel()

	tmr := timer.New()
	tmr.Start()

	time.Sleep(10 * time.Millisecond)
	tmr.NewStage()
	time.Sleep(5 * time.Millisecond)

	total, stage := tmr.GetTiming()

	assert.GreaterOrEqual(t, total, 15*time.Millisecond)
	assert.GreaterOrEqual(t, stage, 5*time.Millisecond)
	assert.Less(t, stage, total)
}
