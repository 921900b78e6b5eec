package loading

import (
	"math/rand"
	"sync"
	"time"
)

// State is the indicator lifecycle
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateFinishing State = "finishing"
)

// Defaults for the indicator timing
const (
	DefaultTickInterval = 500 * time.Millisecond
	DefaultResetDelay   = 500 * time.Millisecond
	DefaultMaxStep      = 15.0
	DefaultCeiling      = 90.0
	Complete            = 100.0
)

// Snapshot is what observers draw
type Snapshot struct {
	State   State
	Visible bool
	Percent float64
}

// Config tunes the indicator; zero fields use the defaults
type Config struct {
	TickInterval time.Duration
	ResetDelay   time.Duration
	MaxStep      float64
	Ceiling      float64

	// Random returns a value in [0,1); tests pin it
	Random func() float64
}

// Indicator is the loading state machine. It is safe for concurrent use.
type Indicator struct {
	mu       sync.Mutex
	state    State
	visible  bool
	percent  float64
	stopTick chan struct{}
	reset    *time.Timer
	runID    uint64

	interval   time.Duration
	resetDelay time.Duration
	maxStep    float64
	ceiling    float64
	random     func() float64
	onChange   func(Snapshot)
}

// New creates an idle, hidden indicator
func New(cfg Config) *Indicator {
	ind := &Indicator{
		state:      StateIdle,
		interval:   cfg.TickInterval,
		resetDelay: cfg.ResetDelay,
		maxStep:    cfg.MaxStep,
		ceiling:    cfg.Ceiling,
		random:     cfg.Random,
	}
	if ind.interval <= 0 {
		ind.interval = DefaultTickInterval
	}
	if ind.resetDelay <= 0 {
		ind.resetDelay = DefaultResetDelay
	}
	if ind.maxStep <= 0 {
		ind.maxStep = DefaultMaxStep
	}
	if ind.ceiling <= 0 || ind.ceiling > Complete {
		ind.ceiling = DefaultCeiling
	}
	if ind.random == nil {
		ind.random = rand.Float64
	}
	return ind
}

// SetUpdateCallback sets the function called after every change
func (i *Indicator) SetUpdateCallback(callback func(Snapshot)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.onChange = callback
}

// Snapshot returns the current state
func (i *Indicator) Snapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshotLocked()
}

// ticking reports whether the progress ticker is running
func (i *Indicator) ticking() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stopTick != nil
}

// Start shows the indicator at 0% and starts the ticker. It returns false and
// changes nothing when the indicator is already running. A pending reset from
// a previous Stop is cancelled.
func (i *Indicator) Start() bool {
	i.mu.Lock()
	if i.state == StateRunning {
		i.mu.Unlock()
		return false
	}

	if i.reset != nil {
		i.reset.Stop()
		i.reset = nil
	}
	i.runID++
	i.state = StateRunning
	i.visible = true
	i.percent = 0

	stop := make(chan struct{})
	i.stopTick = stop
	go i.tick(stop)

	snap, notify := i.snapshotLocked(), i.onChange
	i.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
	return true
}

// Stop clears the ticker, snaps to 100% and schedules the reset to idle.
// Stopping an indicator that is not running does nothing.
func (i *Indicator) Stop() {
	i.mu.Lock()
	if i.state != StateRunning {
		i.mu.Unlock()
		return
	}

	close(i.stopTick)
	i.stopTick = nil
	i.state = StateFinishing
	i.percent = Complete

	runID := i.runID
	i.reset = time.AfterFunc(i.resetDelay, func() { i.finish(runID) })

	snap, notify := i.snapshotLocked(), i.onChange
	i.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

func (i *Indicator) tick(stop chan struct{}) {
	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			i.advance(stop)
		}
	}
}

func (i *Indicator) advance(stop chan struct{}) {
	i.mu.Lock()
	if i.stopTick != stop {
		i.mu.Unlock()
		return
	}

	i.percent += i.random() * i.maxStep
	if i.percent > i.ceiling {
		i.percent = i.ceiling
	}

	snap, notify := i.snapshotLocked(), i.onChange
	i.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

func (i *Indicator) finish(runID uint64) {
	i.mu.Lock()
	if i.runID != runID || i.state != StateFinishing {
		i.mu.Unlock()
		return
	}

	i.state = StateIdle
	i.visible = false
	i.percent = 0
	i.reset = nil

	snap, notify := i.snapshotLocked(), i.onChange
	i.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

func (i *Indicator) snapshotLocked() Snapshot {
	return Snapshot{State: i.state, Visible: i.visible, Percent: i.percent}
}
