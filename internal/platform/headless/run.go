package headless

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// DefaultMaxSteps bounds a run when Options.MaxSteps is not set:
// ten minutes of virtual time at the default 20ms tick.
const DefaultMaxSteps = 30000

// Options configures a headless run.
type Options struct {
	MaxSteps int         // Tick periods to simulate at most; <= 0 uses DefaultMaxSteps
	Logger   *log.Logger // Optional; phase changes are logged at debug level
}

// Report summarizes a finished run.
type Report struct {
	Score   int
	Steps   int    // Tick periods simulated, including before the first flap
	Ticks   uint64 // Ticks the engine processed while running
	Flaps   int
	Spawned int
	Phase   flappy.Phase
	Elapsed time.Duration // Virtual time simulated
}

// String formats the report for the terminal.
func (r Report) String() string {
	return fmt.Sprintf("score %d, %s ticks played (%s virtual), %s flaps, %s pipes spawned, phase %s",
		r.Score,
		humanize.Comma(int64(r.Ticks)),
		r.Elapsed,
		humanize.Comma(int64(r.Flaps)),
		humanize.Comma(int64(r.Spawned)),
		r.Phase,
	)
}

// Run drives eng from src until the game is over, the step limit is reached
// or ctx is cancelled. Each step asks src once, then dispatches the timer
// events due in that tick period. All calls into the engine happen on the
// calling goroutine, one at a time.
func Run(ctx context.Context, eng *flappy.Engine, src Source, opts Options) (Report, error) {
	cfg := eng.Config()
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	sched := NewScheduler(cfg.Timing)
	var report Report
	phase := eng.Phase()
	if phase == flappy.PhaseRunning {
		sched.ArmSpawn()
	}

	finish := func() Report {
		st := eng.State()
		report.Score = st.Score
		report.Ticks = st.Ticks
		report.Phase = st.Phase
		report.Elapsed = sched.Now()
		return report
	}

	for report.Steps < maxSteps && phase != flappy.PhaseOver {
		if err := ctx.Err(); err != nil {
			return finish(), fmt.Errorf("headless: run stopped: %w", err)
		}

		if src.ShouldFlap(eng.State(), cfg) {
			eng.Flap()
			report.Flaps++
		}
		phase = observe(eng, sched, phase, opts.Logger)

		for _, ev := range sched.Advance() {
			switch ev {
			case EventTick:
				eng.Tick()
			case EventSpawn:
				eng.SpawnObstacle()
				report.Spawned++
			}
		}
		report.Steps++
		phase = observe(eng, sched, phase, opts.Logger)
	}

	return finish(), nil
}

// observe arms or stops the spawn timer on phase changes.
func observe(eng *flappy.Engine, sched *Scheduler, prev flappy.Phase, logger *log.Logger) flappy.Phase {
	cur := eng.Phase()
	if cur == prev {
		return cur
	}

	switch cur {
	case flappy.PhaseRunning:
		sched.ArmSpawn()
	default:
		sched.StopSpawn()
	}

	if logger != nil {
		st := eng.State()
		logger.Debug("phase changed", "from", prev, "to", cur, "score", st.Score, "ticks", st.Ticks, "at", sched.Now())
	}
	return cur
}
