package condns

// PolicyKind selects which widget property a policy drives.
type PolicyKind uint8

const (
	KindSensitivity PolicyKind = iota
	KindVisibility

	policyKinds
)

// Policy binds one widget property (sensitivity or visibility) to the
// condition set. A policy carries a bit group and one or more accepted
// patterns; the widget satisfies the policy when the current conditions,
// masked by the group, equal one of the patterns.
//
// The common case is the single-pattern form built by Sensitivity and
// Visibility, where the widget is enabled iff every required bit is set.
type Policy struct {
	kind     PolicyKind
	group    Condns
	patterns []Condns
}

// Sensitivity makes a widget sensitive iff every bit of required is set.
func Sensitivity(required Condns) Policy {
	return Policy{kind: KindSensitivity, group: required, patterns: []Condns{required}}
}

// Visibility makes a widget visible iff every bit of required is set.
func Visibility(required Condns) Policy {
	return Policy{kind: KindVisibility, group: required, patterns: []Condns{required}}
}

// SensitivityPatterns makes a widget sensitive iff the conditions masked by
// group match one of the accepted patterns.
func SensitivityPatterns(group Condns, patterns ...Condns) Policy {
	return Policy{kind: KindSensitivity, group: group, patterns: patterns}
}

// VisibilityPatterns makes a widget visible iff the conditions masked by
// group match one of the accepted patterns.
func VisibilityPatterns(group Condns, patterns ...Condns) Policy {
	return Policy{kind: KindVisibility, group: group, patterns: patterns}
}

// Kind returns which widget property the policy drives.
func (p Policy) Kind() PolicyKind { return p.kind }

// Satisfied evaluates the policy against the given condition set.
func (p Policy) Satisfied(current Condns) bool {
	masked := current & p.group
	for _, pattern := range p.patterns {
		if masked == pattern&p.group {
			return true
		}
	}
	return false
}
