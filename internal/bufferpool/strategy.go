package bufferpool

import (
	"fmt"
	"strings"
)

// Strategy selects the replacement policy. It is fixed at Open and
// only changes when the victim stamp is refreshed: FIFO stamps a frame
// once at load, the LRU-class strategies restamp on every access.
type Strategy int

const (
	FIFO Strategy = iota
	LRU
	LRUK
)

func (s Strategy) String() string {
	switch s {
	case FIFO:
		return "fifo"
	case LRU:
		return "lru"
	case LRUK:
		return "lru-k"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// restampOnHit reports whether pinning an already-resident page counts
// as an access for victim ordering.
func (s Strategy) restampOnHit() bool {
	return s == LRU || s == LRUK
}

// ParseStrategy maps a config/CLI tag to a Strategy.
func ParseStrategy(tag string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "lru-k", "lruk", "lru_k":
		return LRUK, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, tag)
	}
}
