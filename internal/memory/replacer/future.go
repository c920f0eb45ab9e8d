package replacer

import (
	"sort"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Future answers next-occurrence queries against an immutable trace.
type Future interface {
	// NextUse returns the first tick strictly after `after` at which number is
	// referenced, or false if it never is.
	NextUse(number util.PageNumber, after util.Tick) (util.Tick, bool)
}

// Index is a Future built once per trace: for every page, the sorted ticks it
// is referenced at. Queries are a binary search.
type Index struct {
	positions map[util.PageNumber][]int
	length    int
}

func NewFuture(trace []util.PageNumber) *Index {
	idx := &Index{
		positions: make(map[util.PageNumber][]int),
		length:    len(trace),
	}
	for tick, number := range trace {
		idx.positions[number] = append(idx.positions[number], tick)
	}
	return idx
}

func (idx *Index) NextUse(number util.PageNumber, after util.Tick) (util.Tick, bool) {
	ticks := idx.positions[number]
	i := sort.SearchInts(ticks, int(after)+1)
	if i == len(ticks) {
		return util.NoTick, false
	}
	return util.Tick(ticks[i]), true
}

// Len is the length of the indexed trace.
func (idx *Index) Len() int {
	return idx.length
}
