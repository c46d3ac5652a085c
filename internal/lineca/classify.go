package lineca

// Pattern is the long-run behavior of a starting configuration.
type Pattern int

const (
	// Blinking: the evolution exactly repeats an earlier configuration
	// in place.
	Blinking Pattern = iota
	// Gliding: the evolution reproduces an earlier configuration
	// shifted by a nonzero offset.
	Gliding
	// Vanishing: the evolution reaches the empty configuration.
	Vanishing
	// Other: none of the above within the step budget.
	Other
)

// String returns the lower-case name printed for the pattern.
func (p Pattern) String() string {
	switch p {
	case Blinking:
		return "blinking"
	case Gliding:
		return "gliding"
	case Vanishing:
		return "vanishing"
	default:
		return "other"
	}
}

// DefaultMaxDepth is the standard simulation budget per line.
const DefaultMaxDepth = 100

// Classify simulates the automaton from the configuration encoded in
// line for at most maxDepth generations and reports its pattern. The
// function is pure and total: every line yields exactly one pattern.
//
// Each step checks, in priority order: the empty next configuration
// (vanishing), an exact repeat of any history entry except the
// immediately preceding one (blinking), a translated repeat of any
// history entry (gliding), and finally the step budget (other). The
// last history entry is skipped in the exact-repeat check: the next
// configuration is derived from it and could only equal it at a fixed
// point.
func Classify(line string, maxDepth int) Pattern {
	current := FromString(line)
	history := []*Row{current}

	for depth := 2; ; depth++ {
		next := current.Next()

		if next.Empty() {
			return Vanishing
		}
		for _, prev := range history[:len(history)-1] {
			if next.Equal(prev) {
				return Blinking
			}
		}
		for _, prev := range history {
			if next.GlidesOnto(prev) {
				return Gliding
			}
		}
		if depth >= maxDepth {
			return Other
		}

		history = append(history, next)
		current = next
	}
}
