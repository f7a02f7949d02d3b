// Package timer provides a registry of named, independently scheduled
// callbacks. Callbacks fire on their own goroutines, fully concurrently with
// whatever foreground work (such as a blocked prompt read) the owning session
// is performing. The registry performs no synchronization between callbacks
// and the foreground loop over any shared output sink; interleaved writes can
// visually corrupt each other, and callers using timers alongside prompts are
// responsible for avoiding collisions.
package timer

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/promptly-io/promptly/pkg/identifier"
)

var (
	// ErrNilCallback indicates a registration with a nil callback.
	ErrNilCallback = errors.New("nil callback")
	// ErrNonPositiveInterval indicates a registration with a zero or negative
	// interval.
	ErrNonPositiveInterval = errors.New("non-positive interval")
	// ErrDuplicateName indicates a registration whose name collides with an
	// active handle. The existing handle is left untouched.
	ErrDuplicateName = errors.New("duplicate timer name")
)

// Context carries fire information to a timer callback.
type Context struct {
	// Name is the name of the firing timer.
	Name string
	// Ticks is the total number of fires for the timer, including this one.
	Ticks uint64
	// SignalTime is the time at which the fire was signaled.
	SignalTime time.Time
}

// Callback is the signature for timer callbacks.
type Callback func(Context)

// Handle represents a registered timer. Handles are created by Registry.Add
// and retired by removal, by Registry.Clear, or (for non-repeating timers)
// automatically after their single fire.
type Handle struct {
	// name is the timer's unique name.
	name string
	// interval is the scheduling interval.
	interval time.Duration
	// repeating indicates whether or not the timer re-fires.
	repeating bool
	// ticks is the fire count. It is accessed atomically.
	ticks uint64
	// active indicates whether or not the schedule is still running. It is
	// accessed atomically.
	active uint32
	// stopOnce guards schedule teardown.
	stopOnce sync.Once
	// done terminates the scheduling goroutine.
	done chan struct{}
	// ticker drives repeating schedules.
	ticker *time.Ticker
	// timer drives one-shot schedules.
	timer *time.Timer
}

// Name returns the timer's name.
func (h *Handle) Name() string {
	return h.name
}

// Interval returns the timer's scheduling interval.
func (h *Handle) Interval() time.Duration {
	return h.interval
}

// Repeating indicates whether or not the timer re-fires.
func (h *Handle) Repeating() bool {
	return h.repeating
}

// Ticks returns the number of times the timer has fired.
func (h *Handle) Ticks() uint64 {
	return atomic.LoadUint64(&h.ticks)
}

// Active indicates whether or not the timer's schedule is still running.
func (h *Handle) Active() bool {
	return atomic.LoadUint32(&h.active) == 1
}

// stop halts the schedule and releases its timing resource. It is idempotent
// and safe to invoke from the timer's own callback.
func (h *Handle) stop() {
	h.stopOnce.Do(func() {
		// Mark the handle inactive.
		atomic.StoreUint32(&h.active, 0)

		// Release the timing resource. One-shot timers are stopped and
		// drained without any knowledge of their current state.
		if h.ticker != nil {
			h.ticker.Stop()
		}
		if h.timer != nil {
			h.timer.Stop()
			select {
			case <-h.timer.C:
			default:
			}
		}

		// Terminate the scheduling goroutine.
		close(h.done)
	})
}

// Registry is a set of named timers. It is safe for concurrent usage,
// including removal from within a timer's own callback. Each session owns its
// own registry; there is no process-wide shared instance.
type Registry struct {
	// lock serializes access to handles.
	lock sync.Mutex
	// handles maps timer names to their handles.
	handles map[string]*Handle
}

// NewRegistry creates an empty timer registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[string]*Handle),
	}
}

// Add registers a new timer. If name is empty, a collision-resistant name is
// generated automatically. Registration fails (leaving any existing handle
// untouched and still firing) if the name collides with an active handle. The
// callback fires every interval if repeating, or exactly once after interval
// otherwise, in which case the handle retires itself after the callback
// returns regardless of whether the callback itself requested removal.
func (r *Registry) Add(callback Callback, interval time.Duration, name string, repeating bool) (*Handle, error) {
	// Validate arguments.
	if callback == nil {
		return nil, ErrNilCallback
	}
	if interval <= 0 {
		return nil, ErrNonPositiveInterval
	}

	// Generate a name if none was specified.
	if name == "" {
		generated, err := identifier.New(identifier.PrefixTimer)
		if err != nil {
			return nil, fmt.Errorf("unable to generate timer name: %w", err)
		}
		name = generated
	}

	// Create the handle.
	handle := &Handle{
		name:      name,
		interval:  interval,
		repeating: repeating,
		active:    1,
		done:      make(chan struct{}),
	}

	// Register the handle, checking for name collisions.
	r.lock.Lock()
	if _, ok := r.handles[name]; ok {
		r.lock.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	r.handles[name] = handle
	r.lock.Unlock()

	// Start the schedule.
	if repeating {
		handle.ticker = time.NewTicker(interval)
		go func() {
			for {
				select {
				case signalTime := <-handle.ticker.C:
					callback(Context{
						Name:       name,
						Ticks:      atomic.AddUint64(&handle.ticks, 1),
						SignalTime: signalTime,
					})
				case <-handle.done:
					return
				}
			}
		}()
	} else {
		handle.timer = time.NewTimer(interval)
		go func() {
			select {
			case signalTime := <-handle.timer.C:
				callback(Context{
					Name:       name,
					Ticks:      atomic.AddUint64(&handle.ticks, 1),
					SignalTime: signalTime,
				})

				// Retire the handle now that its single fire is complete. If
				// the callback already removed it, this is a no-op.
				r.Remove(name)
			case <-handle.done:
			}
		}()
	}

	// Success.
	return handle, nil
}

// Remove unregisters and stops the named timer, releasing its underlying
// timing resource. It returns true if the timer was found and disposed.
// Removal is idempotent: a second removal of the same name is a no-op
// returning false. It is safe to invoke from within the timer's own callback.
func (r *Registry) Remove(name string) bool {
	// Grab the handle and remove it from the registry.
	r.lock.Lock()
	handle, ok := r.handles[name]
	if ok {
		delete(r.handles, name)
	}
	r.lock.Unlock()
	if !ok {
		return false
	}

	// Stop the schedule outside the registry lock.
	handle.stop()

	// Success.
	return true
}

// Clear unregisters and stops all timers, returning the number removed. The
// registry is snapshotted before any handle is stopped, so removal requests
// issued by callbacks racing with the clear cannot corrupt iteration.
func (r *Registry) Clear() int {
	// Snapshot and reset the registry.
	r.lock.Lock()
	handles := make([]*Handle, 0, len(r.handles))
	for _, handle := range r.handles {
		handles = append(handles, handle)
	}
	r.handles = make(map[string]*Handle)
	r.lock.Unlock()

	// Stop the snapshotted handles.
	for _, handle := range handles {
		handle.stop()
	}

	// Done.
	return len(handles)
}

// Names returns the names of all registered timers.
func (r *Registry) Names() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]string, 0, len(r.handles))
	for name := range r.handles {
		result = append(result, name)
	}
	return result
}
