package replacer

import (
	"fmt"
	"math"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Frames is the read-only view of a frame table a policy scans, in slot order.
type Frames interface {
	Size() int
	At(i int) page.Page
}

// SelectVictim returns the resident page alg evicts. now is the tick of the
// faulting reference; only Optimal reads future, and only past now.
// Ties go to the first slot found.
func SelectVictim(alg Algorithm, frames Frames, future Future, now util.Tick) (util.PageNumber, error) {
	if frames.Size() == 0 {
		return 0, fmt.Errorf("[replacer] [%v] %w", alg, util.ErrEmptyFrameTable)
	}

	var idx int
	switch alg {
	case FIFO:
		idx = oldestArrival(frames)
	case LRU:
		idx = leastRecentlyUsed(frames)
	case MFU:
		idx = mostFrequentlyUsed(frames)
	case Optimal:
		if future == nil {
			return 0, fmt.Errorf("[replacer] [%v] %w", alg, util.ErrMissingFuture)
		}
		idx = furthestNextUse(frames, future, now)
	default:
		return 0, fmt.Errorf("[replacer] %v: %w", alg, util.ErrUnknownAlgorithm)
	}

	return frames.At(idx).Number, nil
}

func oldestArrival(frames Frames) int {
	victim, oldest := 0, util.Tick(math.MaxInt)
	for i := 0; i < frames.Size(); i++ {
		if arrival := frames.At(i).ArrivalTime; arrival < oldest {
			victim, oldest = i, arrival
		}
	}
	return victim
}

func leastRecentlyUsed(frames Frames) int {
	victim, least := 0, util.Tick(math.MaxInt)
	for i := 0; i < frames.Size(); i++ {
		if used := frames.At(i).LastUseTime; used < least {
			victim, least = i, used
		}
	}
	return victim
}

// mostFrequentlyUsed starts from slot 0 so an all-zero table still yields a victim.
func mostFrequentlyUsed(frames Frames) int {
	victim, most := 0, frames.At(0).References
	for i := 1; i < frames.Size(); i++ {
		if refs := frames.At(i).References; refs > most {
			victim, most = i, refs
		}
	}
	return victim
}

// furthestNextUse evicts the first page that is never referenced again, or
// else the first page with the latest next use. A page needed by the very
// next reference never displaces slot 0 as the candidate.
func furthestNextUse(frames Frames, future Future, now util.Tick) int {
	victim, furthest := 0, now+1
	for i := 0; i < frames.Size(); i++ {
		next, ok := future.NextUse(frames.At(i).Number, now)
		if !ok {
			return i
		}
		if next > furthest {
			victim, furthest = i, next
		}
	}
	return victim
}
