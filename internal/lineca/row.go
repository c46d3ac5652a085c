// Package lineca simulates a one-dimensional cellular automaton over an
// unbounded integer line and classifies the long-run behavior of its
// starting configurations.
package lineca

// Row is one configuration of the automaton: the set of filled positions
// on an infinite line. Filled positions are stored sparsely in a map,
// with the smallest and largest filled position cached alongside. The
// min/max fields are meaningless while the row is empty.
type Row struct {
	cells map[int]bool
	min   int
	max   int
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{cells: make(map[int]bool)}
}

// FromString builds a row from a line of text. The character '#' marks a
// filled position at its 0-based column; every other character is an
// empty cell. The result may be empty.
func FromString(s string) *Row {
	row := NewRow()
	i := 0
	for _, c := range s {
		if c == '#' {
			row.Insert(i)
		}
		i++
	}
	return row
}

// Insert adds a filled position and updates the cached bounds. The
// branches are mutually exclusive: callers insert in scan or sweep
// order, so a value is never both a new min and a new max of a
// non-empty row.
func (r *Row) Insert(v int) {
	if len(r.cells) == 0 {
		r.min = v
		r.max = v
	} else if v < r.min {
		r.min = v
	} else if v > r.max {
		r.max = v
	}
	r.cells[v] = true
}

// Len returns the number of filled positions.
func (r *Row) Len() int { return len(r.cells) }

// Empty reports whether no position is filled.
func (r *Row) Empty() bool { return len(r.cells) == 0 }

// Contains reports whether position v is filled.
func (r *Row) Contains(v int) bool { return r.cells[v] }

// Min returns the smallest filled position. Undefined for an empty row.
func (r *Row) Min() int { return r.min }

// Max returns the largest filled position. Undefined for an empty row.
func (r *Row) Max() int { return r.max }

// NeighborSum counts the filled positions among {v-2, v-1, v+1, v+2}.
// The position itself is not part of its own neighborhood.
func (r *Row) NeighborSum(v int) int {
	sum := 0
	for _, n := range [4]int{v - 2, v - 1, v + 1, v + 2} {
		if r.cells[n] {
			sum++
		}
	}
	return sum
}

// born reports whether an empty position becomes filled in the next
// generation: neighbor sum 2 or 3.
func (r *Row) born(v int) bool {
	sum := r.NeighborSum(v)
	return sum == 2 || sum == 3
}

// survives reports whether a filled position stays filled in the next
// generation: neighbor sum 2 or 4.
func (r *Row) survives(v int) bool {
	sum := r.NeighborSum(v)
	return sum == 2 || sum == 4
}

// Next computes the following generation. Only positions in
// [min-1, max+1] can be filled next, so the sweep is bounded by the
// current span widened by one cell on each side. For an empty row the
// zero-valued bounds make the sweep scan [-1, 1], which stays empty.
func (r *Row) Next() *Row {
	next := NewRow()
	for v := r.min - 1; v <= r.max+1; v++ {
		var fill bool
		if r.cells[v] {
			fill = r.survives(v)
		} else {
			fill = r.born(v)
		}
		if fill {
			next.Insert(v)
		}
	}
	return next
}

// Equal reports whether both rows fill exactly the same positions.
func (r *Row) Equal(other *Row) bool {
	if len(r.cells) != len(other.cells) {
		return false
	}
	for v := range r.cells {
		if !other.cells[v] {
			return false
		}
	}
	return true
}

// EqShift reports whether every filled position of r, shifted by
// offset, is filled in other. The test is one-directional: it is an
// exact match only when both rows are known to have the same number of
// filled positions.
func (r *Row) EqShift(other *Row, offset int) bool {
	for v := range r.cells {
		if !other.cells[v+offset] {
			return false
		}
	}
	return true
}

// GlidesOnto reports whether r is a translated copy of other: same
// number of filled positions, a different minimum (the pattern has
// actually moved), and aligning the minima maps every filled position
// of r onto a filled position of other.
func (r *Row) GlidesOnto(other *Row) bool {
	return len(r.cells) == len(other.cells) &&
		r.min != other.min &&
		r.EqShift(other, other.min-r.min)
}
