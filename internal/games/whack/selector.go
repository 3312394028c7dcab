package whack

// TargetSelector picks where the next mole appears.
type TargetSelector struct {
	rnd *RandomSource
}

// NewTargetSelector creates a selector drawing from rnd.
func NewTargetSelector(rnd *RandomSource) TargetSelector {
	return TargetSelector{rnd: rnd}
}

// Choose samples locations uniformly until the pick differs from s.Last,
// then records the pick in s.Last.
// With a single location this never returns; config validation requires
// at least two holes.
func (t TargetSelector) Choose(s *Session, locations []*Location) (*Location, error) {
	for {
		i, err := t.rnd.Integer(0, len(locations)-1)
		if err != nil {
			return nil, err
		}
		if l := locations[i]; l != s.Last {
			s.Last = l
			return l, nil
		}
	}
}
