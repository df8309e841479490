// Package stampx implements logical-clock stamp bookkeeping for a fixed
// number of slots. Age-based (FIFO) and recency-based (LRU) replacement
// policies share it; they differ only in when they call Touch.
package stampx

// NormalizeThreshold bounds the logical clock. Once a victim scan sees
// the clock above this value, the clock and every present stamp reset
// to zero together, so relative order among tracked slots collapses but
// no slot is falsely favored.
const NormalizeThreshold = 32000

// Tracker tracks one stamp per slot ID in [0..capacity). A slot that
// has never been touched has no stamp and is the preferred victim.
type Tracker struct {
	stamp   []int64
	present []bool
	clock   int64
	limit   int64
}

func New(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = 1
	}
	return &Tracker{
		stamp:   make([]int64, capacity),
		present: make([]bool, capacity),
		limit:   NormalizeThreshold,
	}
}

func (t *Tracker) Capacity() int { return len(t.stamp) }

// Clock returns the next stamp value to be handed out.
func (t *Tracker) Clock() int64 { return t.clock }

// Touch stamps slot id with the current clock value and advances the
// clock.
func (t *Tracker) Touch(id int) {
	if id < 0 || id >= len(t.stamp) {
		return
	}
	t.stamp[id] = t.clock
	t.present[id] = true
	t.clock++
}

// Stamped reports whether slot id has ever been touched.
func (t *Tracker) Stamped(id int) bool {
	if id < 0 || id >= len(t.stamp) {
		return false
	}
	return t.present[id]
}

// StampOf returns the slot's stamp, or zero when it has none.
func (t *Tracker) StampOf(id int) int64 {
	if id < 0 || id >= len(t.stamp) || !t.present[id] {
		return 0
	}
	return t.stamp[id]
}

// Remove forgets the slot's stamp entirely.
func (t *Tracker) Remove(id int) {
	if id < 0 || id >= len(t.stamp) {
		return
	}
	t.present[id] = false
	t.stamp[id] = 0
}

// Victim scans slots in index order and picks the eviction candidate
// among those the caller marks eligible. A slot with no stamp wins
// immediately; otherwise the slot whose stamp is <= the running
// minimum (seeded from the current clock) wins. Returns (-1, false)
// when nothing is eligible. The clock is normalized after every scan.
func (t *Tracker) Victim(eligible func(id int) bool) (id int, ok bool) {
	victim := -1
	minStamp := t.clock
	for i := range t.stamp {
		if !eligible(i) {
			continue
		}
		if !t.present[i] {
			victim = i
			break
		}
		if t.stamp[i] <= minStamp {
			minStamp = t.stamp[i]
			victim = i
		}
	}
	t.normalize()
	if victim == -1 {
		return -1, false
	}
	return victim, true
}

func (t *Tracker) normalize() {
	if t.clock <= t.limit {
		return
	}
	t.clock = 0
	for i := range t.stamp {
		if t.present[i] {
			t.stamp[i] = 0
		}
	}
}
