package replacer

import (
	"fmt"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Algorithm tags a page replacement policy
type Algorithm int

const (
	FIFO Algorithm = iota
	LRU
	MFU
	Optimal
)

// All returns the algorithms in report order.
func All() []Algorithm {
	return []Algorithm{FIFO, LRU, MFU, Optimal}
}

func (a Algorithm) Valid() bool {
	return a >= FIFO && a <= Optimal
}

func (a Algorithm) String() string {
	switch a {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case MFU:
		return "MFU"
	case Optimal:
		return "Optimal"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts the names printed by String, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range All() {
		if strings.EqualFold(a.String(), strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return -1, fmt.Errorf("[replacer] %q: %w", name, util.ErrUnknownAlgorithm)
}
