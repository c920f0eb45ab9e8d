package replacer

import (
	"testing"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/frame"
	"github.com/bietkhonhungvandi212/pagesim/internal/memory/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slots []page.Page

func (s slots) Size() int { return len(s) }
func (s slots) At(i int) page.Page { return s[i] }

// scanFuture walks the trace suffix the way a naive implementation would.
type scanFuture []util.PageNumber

func (s scanFuture) NextUse(number util.PageNumber, after util.Tick) (util.Tick, bool) {
	for i := int(after) + 1; i < len(s); i++ {
		if s[i] == number {
			return util.Tick(i), true
		}
	}
	return util.NoTick, false
}

func TestSelectVictimFIFO(t *testing.T) {
	frames := slots{
		page.CreateTestPage(1, 4, util.NoTick, 0),
		page.CreateTestPage(2, 1, util.NoTick, 0),
		page.CreateTestPage(3, 7, util.NoTick, 0),
	}
	victim, err := SelectVictim(FIFO, frames, nil, 8)
	require.NoError(t, err)
	assert.Equal(t, util.PageNumber(2), victim, "earliest arrival")

	t.Run("TieGoesToFirstSlot", func(t *testing.T) {
		tied := slots{
			page.CreateTestPage(5, 3, util.NoTick, 0),
			page.CreateTestPage(6, 3, util.NoTick, 0),
		}
		victim, err := SelectVictim(FIFO, tied, nil, 9)
		require.NoError(t, err)
		assert.Equal(t, util.PageNumber(5), victim)
	})
}

func TestSelectVictimLRU(t *testing.T) {
	frames := slots{
		page.CreateTestPage(1, 0, 6, 0),
		page.CreateTestPage(2, 0, 9, 0),
		page.CreateTestPage(3, 0, 2, 0),
	}
	victim, err := SelectVictim(LRU, frames, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, util.PageNumber(3), victim, "least recent use")

	t.Run("UnsetLastUseIsOldest", func(t *testing.T) {
		frames := slots{
			page.CreateTestPage(1, 0, 6, 0),
			page.CreateTestPage(2, 0, util.NoTick, 0),
		}
		victim, err := SelectVictim(LRU, frames, nil, 10)
		require.NoError(t, err)
		assert.Equal(t, util.PageNumber(2), victim)
	})
}

func TestSelectVictimMFU(t *testing.T) {
	tests := []struct {
		name   string
		frames slots
		want   util.PageNumber
	}{
		{
			name: "Most references",
			frames: slots{
				page.CreateTestPage(1, 0, util.NoTick, 2),
				page.CreateTestPage(2, 0, util.NoTick, 5),
				page.CreateTestPage(3, 0, util.NoTick, 1),
			},
			want: 2,
		},
		{
			name: "Tie goes to first slot",
			frames: slots{
				page.CreateTestPage(1, 0, util.NoTick, 1),
				page.CreateTestPage(2, 0, util.NoTick, 4),
				page.CreateTestPage(3, 0, util.NoTick, 4),
			},
			want: 2,
		},
		{
			name: "All zero still selects",
			frames: slots{
				page.CreateTestPage(7, 0, util.NoTick, 0),
				page.CreateTestPage(8, 0, util.NoTick, 0),
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			victim, err := SelectVictim(MFU, tt.frames, nil, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, victim)
		})
	}
}

func TestSelectVictimOptimal(t *testing.T) {
	tests := []struct {
		name   string
		trace  []util.PageNumber
		frames []util.PageNumber
		now    util.Tick
		want   util.PageNumber
	}{
		{
			name:   "Furthest next use",
			trace:  util.Trace(1, 2, 3, 4, 1, 2, 3),
			frames: util.Trace(1, 2, 3),
			now:    3,
			want:   3,
		},
		{
			name:   "Never used again wins immediately",
			trace:  util.Trace(1, 2, 3, 4, 3, 1),
			frames: util.Trace(1, 2, 3),
			now:    3,
			want:   2,
		},
		{
			name:   "First absent page in slot order",
			trace:  util.Trace(1, 2, 3, 4, 1),
			frames: util.Trace(1, 2, 3),
			now:    3,
			want:   2,
		},
		{
			name:   "Next reference page stays unless nothing beats slot 0",
			trace:  util.Trace(5, 6, 5),
			frames: util.Trace(5),
			now:    1,
			want:   5,
		},
		{
			name:   "End of trace evicts first slot",
			trace:  util.Trace(1, 2, 3, 4),
			frames: util.Trace(1, 2, 3),
			now:    3,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := make(slots, len(tt.frames))
			for i, n := range tt.frames {
				frames[i] = page.New(n)
			}

			victim, err := SelectVictim(Optimal, frames, NewFuture(tt.trace), tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, victim)

			scanned, err := SelectVictim(Optimal, frames, scanFuture(tt.trace), tt.now)
			require.NoError(t, err)
			assert.Equal(t, victim, scanned, "index and scan must agree")
		})
	}
}

func TestSelectVictimErrors(t *testing.T) {
	t.Run("EmptyFrames", func(t *testing.T) {
		for _, alg := range All() {
			_, err := SelectVictim(alg, slots{}, NewFuture(nil), 0)
			assert.ErrorIs(t, err, util.ErrEmptyFrameTable, alg.String())
		}
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		_, err := SelectVictim(Algorithm(42), slots{page.New(1)}, nil, 0)
		assert.ErrorIs(t, err, util.ErrUnknownAlgorithm)
	})

	t.Run("OptimalWithoutFuture", func(t *testing.T) {
		_, err := SelectVictim(Optimal, slots{page.New(1)}, nil, 0)
		assert.ErrorIs(t, err, util.ErrMissingFuture)
	})
}

func TestSelectVictimOnFrameTable(t *testing.T) {
	table := frame.NewTable(2)
	require.NoError(t, table.Insert(page.CreateTestPage(4, 0, 0, 1)))
	require.NoError(t, table.Insert(page.CreateTestPage(9, 1, 1, 3)))

	victim, err := SelectVictim(MFU, table, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, util.PageNumber(9), victim)

	require.NoError(t, table.EvictAndInsert(victim, page.CreateTestPage(5, 2, 2, 1)))
	victim, err = SelectVictim(FIFO, table, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, util.PageNumber(4), victim)
}
