package condns

import (
	"fmt"
	"sync"

	"github.com/agnivade/levenshtein"
)

// suggestion cutoff for unknown flag names
const maxSuggestDistance = 2

// FlagSet assigns condition bits to application-level flag names, one bit
// per name, in registration order. The engine never interprets a bit; the
// flag set exists so the application can document and look up what each bit
// means without hand-numbering masks.
type FlagSet struct {
	mu        sync.RWMutex
	nameToBit map[string]uint
	bitToName map[uint]string
}

// NewFlagSet returns an empty flag set.
func NewFlagSet() *FlagSet {
	return &FlagSet{
		nameToBit: make(map[string]uint),
		bitToName: make(map[uint]string),
	}
}

// Register assigns the next free bit to name and returns its mask.
func (fs *FlagSet) Register(name string) (Condns, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.register(name)
}

func (fs *FlagSet) register(name string) (Condns, error) {
	if name == "" {
		return 0, fmt.Errorf("flag name cannot be empty")
	}
	if _, exists := fs.nameToBit[name]; exists {
		return 0, fmt.Errorf("flag %q already registered", name)
	}
	bit := uint(len(fs.nameToBit))
	if bit >= 64 {
		return 0, fmt.Errorf("flag %q: no free bits (64 in use)", name)
	}
	fs.nameToBit[name] = bit
	fs.bitToName[bit] = name
	return 1 << bit, nil
}

// Mask ORs the masks of the named flags. An unknown name is an error; when
// a registered name is close enough, the error suggests it.
func (fs *FlagSet) Mask(names ...string) (Condns, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var out Condns
	for _, name := range names {
		bit, ok := fs.nameToBit[name]
		if !ok {
			if near := fs.nearest(name); near != "" {
				return 0, fmt.Errorf("unknown condition flag %q (did you mean %q?)", name, near)
			}
			return 0, fmt.Errorf("unknown condition flag %q", name)
		}
		out |= 1 << bit
	}
	return out, nil
}

// Name returns the flag name registered for the given single-bit mask.
func (fs *FlagSet) Name(mask Condns) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for bit := uint(0); bit < 64; bit++ {
		if mask == 1<<bit {
			name, ok := fs.bitToName[bit]
			return name, ok
		}
	}
	return "", false
}

// Count returns the number of registered flags.
func (fs *FlagSet) Count() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.nameToBit)
}

func (fs *FlagSet) nearest(name string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for candidate := range fs.nameToBit {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// Pair is the complementary bit-pair convention (for example "mode active"
// vs "mode inactive") layered on top of the engine. The engine itself never
// assumes two bits are mutually exclusive; ChangeTo builds the Change that
// keeps them so, and it is the caller's job to route every flip of the pair
// through it.
type Pair struct {
	Active   Condns
	Inactive Condns
}

// RegisterPair allocates two bits for name, returning the pair. The pair
// starts however the enforcer's initial conditions say; most applications
// seed the inactive bit via Pair.ChangeTo(false).
func (fs *FlagSet) RegisterPair(name string) (Pair, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	active, err := fs.register(name + " active")
	if err != nil {
		return Pair{}, err
	}
	inactive, err := fs.register(name + " inactive")
	if err != nil {
		return Pair{}, err
	}
	return Pair{Active: active, Inactive: inactive}, nil
}

// Group returns the union of both bits, for use as a policy group.
func (p Pair) Group() Condns {
	return p.Active | p.Inactive
}

// ChangeTo builds the atomic update that sets one bit of the pair and
// clears the other.
func (p Pair) ChangeTo(active bool) Change {
	ch := Change{Mask: p.Group()}
	if active {
		ch.Values = p.Active
	} else {
		ch.Values = p.Inactive
	}
	return ch
}
