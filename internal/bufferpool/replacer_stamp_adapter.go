package bufferpool

import "github.com/ApurvGaikwad0/Buffer-Manager/pkg/stampx"

// stampAdapter binds the stampx tracker to the Replacer interface.
// FIFO and the LRU-class strategies share the tracker's victim scan;
// only the restamp-on-hit behavior differs.
type stampAdapter struct {
	t            *stampx.Tracker
	restampOnHit bool
}

func newStampAdapter(capacity int, strategy Strategy) Replacer {
	return &stampAdapter{
		t:            stampx.New(capacity),
		restampOnHit: strategy.restampOnHit(),
	}
}

func (a *stampAdapter) RecordLoad(frameID int) {
	a.t.Touch(frameID)
}

func (a *stampAdapter) RecordAccess(frameID int) {
	if a.restampOnHit {
		a.t.Touch(frameID)
	}
}

func (a *stampAdapter) Victim(eligible func(int) bool) (int, bool) {
	return a.t.Victim(eligible)
}

func (a *stampAdapter) Remove(frameID int) {
	a.t.Remove(frameID)
}

func (a *stampAdapter) AttributeOf(frameID int) int64 {
	return a.t.StampOf(frameID)
}
