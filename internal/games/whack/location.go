package whack

// Location is one hole in the play field.
type Location struct {
	Index   int
	visible bool
}

// Visible reports whether the mole is currently up at this location.
func (l *Location) Visible() bool {
	return l.visible
}

// Toggle flips the visibility of l and returns it.
func Toggle(l *Location) *Location {
	l.visible = !l.visible
	return l
}

// HitFunc handles a player selecting a shown mole.
type HitFunc func(*Location)

// Field is the fixed set of holes.
type Field struct {
	holes    []*Location
	listener HitFunc
}

// NewField creates n hidden locations indexed from 0.
func NewField(n int) *Field {
	holes := make([]*Location, n)
	for i := range holes {
		holes[i] = &Location{Index: i}
	}
	return &Field{holes: holes}
}

// Locations returns the holes in index order.
func (f *Field) Locations() []*Location {
	return f.holes
}

// Len returns the number of holes.
func (f *Field) Len() int {
	return len(f.holes)
}

// At returns the hole at index i, or nil if i is out of range.
func (f *Field) At(i int) *Location {
	if i < 0 || i >= len(f.holes) {
		return nil
	}
	return f.holes[i]
}

// SetListener attaches fn to every hole, replacing any previous handler.
func (f *Field) SetListener(fn HitFunc) {
	f.listener = fn
}

// Click selects hole i. Hidden moles cannot be hit, so the listener only
// runs when the hole is showing. Returns true if the listener ran.
func (f *Field) Click(i int) bool {
	l := f.At(i)
	if l == nil || !l.visible || f.listener == nil {
		return false
	}
	f.listener(l)
	return true
}

// HideAll forces every hole hidden.
func (f *Field) HideAll() {
	for _, l := range f.holes {
		l.visible = false
	}
}

// VisibleCount returns how many holes are showing.
func (f *Field) VisibleCount() int {
	n := 0
	for _, l := range f.holes {
		if l.visible {
			n++
		}
	}
	return n
}
