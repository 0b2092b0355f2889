package scene

import (
	"github.com/jinzhu/copier"
	"github.com/mbernat/pheng/internal/physics"
)

// Snapshot returns an independent copy of the live simulation state. Stepping
// the scene afterwards leaves the snapshot untouched and vice versa.
func (s *Scene) Snapshot() (*physics.State, error) {
	return copyState(s.State)
}

// Restore replaces the live state with a copy of snap. The snapshot itself
// stays valid, so the caller can restore it again later.
func (s *Scene) Restore(snap *physics.State) error {
	st, err := copyState(snap)
	if err != nil {
		return err
	}
	s.State = st
	return nil
}

// Reset restores the scene as it was right after New, dropping any bodies
// spawned since.
func (s *Scene) Reset() error {
	return s.Restore(s.initial)
}

// copyState duplicates a state. Bodies are copied field by field; geometry
// and shape values carry no pointers, so copying the entries is already a
// full copy.
func copyState(src *physics.State) (*physics.State, error) {
	dst := physics.NewState()
	dst.Geometry = append([]physics.Geometry(nil), src.Geometry...)
	for _, b := range src.Bodies {
		dup := &physics.Body{}
		if err := copier.Copy(dup, b); err != nil {
			return nil, err
		}
		dst.Bodies = append(dst.Bodies, dup)
	}
	return dst, nil
}
