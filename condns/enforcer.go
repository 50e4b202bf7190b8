package condns

import (
	"errors"
	"sync"
)

// ErrNotRegistered is returned when a handle does not name a registered
// widget: it was never issued, or the widget was already removed. Double
// removal is a bookkeeping bug in the caller, not a transient condition.
var ErrNotRegistered = errors.New("widget not registered")

// Widget is the capability the enforcer needs from a control. Widgets are
// not owned by the enforcer; registration holds a reference only and
// removal must be explicit.
type Widget interface {
	SetSensitive(bool)
	SetVisible(bool)
}

// Handle names a registered widget. Handles are generation-checked: after
// RemoveWidget the handle goes stale and later calls with it fail with
// ErrNotRegistered, even if the slot has been reused. The zero Handle is
// never valid.
type Handle struct {
	index int
	gen   uint32
}

type slot struct {
	widget   Widget
	policies [policyKinds]*Policy
	gen      uint32
	live     bool
}

// Enforcer owns the current condition set and a registry of widgets with
// attached policies. Every condition change fans out to the whole registry
// in one critical section, so applying the same Change twice is a no-op.
//
// Share one enforcer per UI tree by passing the pointer into every callback
// that reports a condition change.
type Enforcer struct {
	mu      sync.Mutex
	current Condns
	slots   []slot
	free    []int
}

// New returns an enforcer with all condition bits clear.
func New() *Enforcer {
	return WithInitialCondns(0)
}

// WithInitialCondns returns an enforcer whose condition state starts at
// initial, with no widgets registered.
func WithInitialCondns(initial Condns) *Enforcer {
	return &Enforcer{current: initial}
}

// Condns returns the current condition set.
func (e *Enforcer) Condns() Condns {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// AddWidget registers w and immediately evaluates and applies each policy
// against the current conditions. At most one policy per kind is retained;
// when policies contains several of the same kind the last one wins. The
// returned handle is the only way to replace policies or remove the widget.
func (e *Enforcer) AddWidget(w Widget, policies ...Policy) Handle {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.allocSlot()
	s := &e.slots[idx]
	s.widget = w
	for i := range policies {
		p := policies[i]
		s.policies[p.kind] = &p
	}
	e.applySlot(s)
	return Handle{index: idx, gen: s.gen}
}

// SetPolicy replaces the policy of the same kind on the widget named by h
// and applies it immediately. Policies of other kinds are untouched.
func (e *Enforcer) SetPolicy(h Handle, p Policy) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.lookup(h)
	if s == nil {
		return ErrNotRegistered
	}
	s.policies[p.kind] = &p
	e.applySlot(s)
	return nil
}

// RemoveWidget unregisters the widget named by h, dropping all of its
// policies. The widget itself keeps whatever sensitivity and visibility it
// last had. Removing a stale handle returns ErrNotRegistered and leaves
// every other registration untouched.
func (e *Enforcer) RemoveWidget(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.lookup(h)
	if s == nil {
		return ErrNotRegistered
	}
	s.widget = nil
	s.policies = [policyKinds]*Policy{}
	s.live = false
	e.free = append(e.free, h.index)
	return nil
}

// ApplyChangedCondns applies the masked update to the condition set and
// re-evaluates every policy of every registered widget. This is the single
// entry point through which callbacks report state transitions.
func (e *Enforcer) ApplyChangedCondns(ch Change) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.current = ch.ApplyTo(e.current)
	for i := range e.slots {
		if e.slots[i].live {
			e.applySlot(&e.slots[i])
		}
	}
}

func (e *Enforcer) lookup(h Handle) *slot {
	if h.index < 0 || h.index >= len(e.slots) {
		return nil
	}
	s := &e.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return s
}

// allocSlot reuses a freed slot when one exists, bumping its generation so
// stale handles keep failing.
func (e *Enforcer) allocSlot() int {
	if n := len(e.free); n > 0 {
		idx := e.free[n-1]
		e.free = e.free[:n-1]
		e.slots[idx].gen++
		e.slots[idx].live = true
		return idx
	}
	e.slots = append(e.slots, slot{gen: 1, live: true})
	return len(e.slots) - 1
}

func (e *Enforcer) applySlot(s *slot) {
	if p := s.policies[KindSensitivity]; p != nil {
		s.widget.SetSensitive(p.Satisfied(e.current))
	}
	if p := s.policies[KindVisibility]; p != nil {
		s.widget.SetVisible(p.Satisfied(e.current))
	}
}
