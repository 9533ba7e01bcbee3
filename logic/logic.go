package logic

import "strings"

// Logic is a residuated structure ([0,1], ⊗, →, ¬): a t-norm, its residuum,
// and a negation. Implementations MUST satisfy, for all x,y,z in [0,1]:
//
//	commutativity:  x⊗y = y⊗x
//	associativity:  (x⊗y)⊗z = x⊗(y⊗z)
//	monotonicity:   x≤x' ⇒ x⊗y ≤ x'⊗y
//	unit:           x⊗1 = x
//	residuation:    x⊗y ≤ z  ⇔  x ≤ y→z
//
// Logic values are immutable and safe for concurrent read-only use.
type Logic struct {
	name     string
	tnorm    func(x, y float64) float64
	residuum func(x, y float64) float64
	negation func(x float64) float64
}

// New constructs a Logic from a t-norm and its residuum. negation may be nil,
// in which case Negation falls back to x→0. Callers register the result with
// Register; New itself performs no validation beyond what Register checks.
func New(name string, tnorm, residuum func(x, y float64) float64, negation func(x float64) float64) Logic {
	return Logic{name: name, tnorm: tnorm, residuum: residuum, negation: negation}
}

// Name returns the logic's registered name.
func (l Logic) Name() string { return l.name }

// Tensor computes x⊗y.
func (l Logic) Tensor(x, y float64) float64 { return l.tnorm(x, y) }

// Residuum computes x→y.
func (l Logic) Residuum(x, y float64) float64 { return l.residuum(x, y) }

// Negation computes ¬x. Defaults to x→0 when no negation was supplied.
func (l Logic) Negation(x float64) float64 {
	if l.negation != nil {
		return l.negation(x)
	}
	return l.residuum(x, 0)
}

// godel is ⊗ = min, x→y = 1 if x≤y else y.
func godel() Logic {
	return Logic{
		name:  "Godel",
		tnorm: func(x, y float64) float64 { return min(x, y) },
		residuum: func(x, y float64) float64 {
			if x <= y {
				return 1
			}
			return y
		},
	}
}

// lukasiewicz is ⊗ = max(0, x+y-1), x→y = min(1, 1-x+y).
func lukasiewicz() Logic {
	return Logic{
		name:     "Lukasiewicz",
		tnorm:    func(x, y float64) float64 { return max(0, x+y-1) },
		residuum: func(x, y float64) float64 { return min(1, 1-x+y) },
		negation: func(x float64) float64 { return 1 - x },
	}
}

// product is ⊗ = x*y, x→y = 1 if x≤y else y/x.
func product() Logic {
	return Logic{
		name:  "Product",
		tnorm: func(x, y float64) float64 { return x * y },
		residuum: func(x, y float64) float64 {
			if x <= y {
				return 1
			}
			if x == 0 {
				return 1
			}
			return y / x
		},
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// registry is process-scoped per the single-threaded contract (spec §5): the
// enumeration and rewrite engines never run concurrently with a logic swap,
// so no mutex guards it — unlike core.Graph's muVert/muEdgeAdj, which guard
// state mutated from arbitrary goroutines.
var (
	registry = map[string]Logic{}
	active   string
)

func register(l Logic) {
	registry[strings.ToLower(l.name)] = l
}

func init() {
	register(godel())
	register(lukasiewicz())
	register(product())
	active = "godel"
}

// Register adds a user-defined Logic under name. Name lookup is
// case-insensitive everywhere else in the package.
func Register(name string, l Logic) error {
	if l.tnorm == nil || l.residuum == nil {
		return ErrNilLogic
	}
	key := strings.ToLower(name)
	if _, ok := registry[key]; ok {
		return ErrDuplicateLogic
	}
	l.name = name
	registry[key] = l
	return nil
}

// Use selects name as the active logic for subsequent operations.
// Returns ErrUnknownLogic if name is not registered.
func Use(name string) error {
	key := strings.ToLower(name)
	if _, ok := registry[key]; !ok {
		return ErrUnknownLogic
	}
	active = key
	return nil
}

// Get returns the currently active Logic.
func Get() Logic {
	return registry[active]
}

// Lookup returns the Logic registered under name without changing the
// active selection.
func Lookup(name string) (Logic, error) {
	l, ok := registry[strings.ToLower(name)]
	if !ok {
		return Logic{}, ErrUnknownLogic
	}
	return l, nil
}

// With scopes a temporary logic selection: it switches to name, runs fn, and
// restores the previously active logic on every exit path (including a
// panic or an error returned by fn), mirroring the teacher's pattern of
// guaranteeing restoration around a scoped mutation.
func With(name string, fn func() error) error {
	prev := active
	if err := Use(name); err != nil {
		return err
	}
	defer func() { active = prev }()
	return fn()
}
