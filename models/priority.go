package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Priority is the product priority classification stored as a small integer.
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityMedium   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4

	// DefaultPriority is used when no priority is supplied and when a
	// legacy stored value cannot be repaired.
	DefaultPriority = PriorityMedium
)

var (
	ErrInvalidPriority = errors.New("invalid priority value")
	ErrPriorityType    = errors.New("priority must be a number or known label")
)

// priorityLabels is checked in order; matching is by substring so decorated
// labels like "High (urgent)" still resolve. "critically low" therefore
// resolves to Low, same as the label map it replaces.
var priorityLabels = []struct {
	label string
	value Priority
}{
	{"low", PriorityLow},
	{"medium", PriorityMedium},
	{"high", PriorityHigh},
	{"critical", PriorityCritical},
}

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Canonical repairs a stored value: anything outside the enum falls back to
// the default. Used on write paths to heal legacy rows, never on fresh input
// (fresh input goes through NormalizePriority and is rejected instead).
func (p Priority) Canonical() Priority {
	if p.Valid() {
		return p
	}
	return DefaultPriority
}

// NormalizePriority coerces heterogeneous priority input to the canonical
// enum. Match rules are ordered: integer → numeric string → substring label
// → reject. An integer outside 1..4 is rejected rather than clamped; an
// out-of-range integer is a client bug, not a labeling choice.
func NormalizePriority(raw interface{}) (Priority, error) {
	switch v := raw.(type) {
	case nil:
		return DefaultPriority, nil
	case Priority:
		return normalizeInt(int64(v))
	case int:
		return normalizeInt(int64(v))
	case int32:
		return normalizeInt(int64(v))
	case int64:
		return normalizeInt(v)
	case uint:
		return normalizeInt(int64(v))
	case string:
		return normalizeString(v)
	case float64:
		// JSON numbers decode as float64; coerce by truncation like int().
		return normalizeInt(int64(v))
	case float32:
		return normalizeInt(int64(v))
	default:
		return 0, ErrPriorityType
	}
}

func normalizeInt(n int64) (Priority, error) {
	p := Priority(n)
	if !p.Valid() {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

func normalizeString(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return normalizeInt(int64(n))
	}
	if p, ok := matchLabel(s); ok {
		return p, nil
	}
	return 0, ErrInvalidPriority
}

func matchLabel(s string) (Priority, bool) {
	s = strings.ToLower(s)
	for _, l := range priorityLabels {
		if strings.Contains(s, l.label) {
			return l.value, true
		}
	}
	return 0, false
}

// Scan tolerates legacy rows where an unguarded writer stored a label
// string in the priority column. Numeric values pass through untouched
// (out-of-range included; repair happens on the next write, not on read).
// A string that is no known label falls back to the default rather than
// failing the whole row load.
func (p *Priority) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = DefaultPriority
	case int64:
		*p = Priority(v)
	case float64:
		*p = Priority(int64(v))
	case []byte:
		*p = scanString(string(v))
	case string:
		*p = scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Priority", value)
	}
	return nil
}

func scanString(s string) Priority {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Priority(n)
	}
	if p, ok := matchLabel(s); ok {
		return p
	}
	return DefaultPriority
}

// Value always writes the canonical integer, so any row touched by a write
// ends up healed at rest.
func (p Priority) Value() (driver.Value, error) {
	return int64(p), nil
}
