package frame

import (
	"testing"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("ValidSize", func(t *testing.T) {
		table := NewTable(4)
		assert.Equal(t, 4, table.Capacity(), "capacity")
		assert.Equal(t, 0, table.Size(), "empty table")
		assert.False(t, table.Full())
		assert.Empty(t, table.pageToIdx, "pageToIdx empty")
		assert.Empty(t, table.Pages())
	})

	t.Run("ZeroSize", func(t *testing.T) {
		assert.PanicsWithValue(t, util.ErrInvalidFrameCapacity, func() {
			NewTable(0)
		})
	})

	t.Run("NegativeSize", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTable(-1)
		})
	})
}

func TestInsert(t *testing.T) {
	table := NewTable(3)

	t.Run("FillToCapacity", func(t *testing.T) {
		table.Reset()
		for i := 0; i < 3; i++ {
			require.NoError(t, table.Insert(page.New(util.PageNumber(i+10))), "insert %d", i)
			assert.Equal(t, i+1, table.Size())
		}
		assert.True(t, table.Full())
		for i := 0; i < 3; i++ {
			assert.True(t, table.Contains(util.PageNumber(i+10)))
			assert.Equal(t, util.PageNumber(i+10), table.At(i).Number, "slot order follows insertion")
		}
		assert.False(t, table.Contains(99))
	})

	t.Run("InsertWhenFull", func(t *testing.T) {
		table.Reset()
		for i := 0; i < 3; i++ {
			require.NoError(t, table.Insert(page.New(util.PageNumber(i))))
		}
		err := table.Insert(page.New(7))
		assert.ErrorIs(t, err, util.ErrFrameTableFull)
		assert.False(t, table.Contains(7))
		assert.Equal(t, 3, table.Size())
	})

	t.Run("InsertDuplicate", func(t *testing.T) {
		table.Reset()
		require.NoError(t, table.Insert(page.New(5)))
		err := table.Insert(page.New(5))
		assert.ErrorIs(t, err, util.ErrPageAlreadyResident)
		assert.Equal(t, 1, table.Size(), "never two entries for one page")
	})
}

func TestUpdateMetadata(t *testing.T) {
	table := NewTable(2)
	require.NoError(t, table.Insert(page.New(1)))
	require.NoError(t, table.Insert(page.New(2)))

	t.Run("LastUse", func(t *testing.T) {
		require.NoError(t, table.UpdateMetadata(2, page.FieldLastUse, 9))
		p, ok := table.Get(2)
		require.True(t, ok)
		assert.Equal(t, util.Tick(9), p.LastUseTime)
	})

	t.Run("References", func(t *testing.T) {
		require.NoError(t, table.UpdateMetadata(1, page.FieldReferences, 4))
		p, ok := table.Get(1)
		require.True(t, ok)
		assert.Equal(t, 4, p.References)
	})

	t.Run("NotResident", func(t *testing.T) {
		err := table.UpdateMetadata(3, page.FieldReferences, 1)
		assert.ErrorIs(t, err, util.ErrPageNotResident)
		assert.Equal(t, 2, table.Size(), "table unchanged")
	})
}

func TestEvictAndInsert(t *testing.T) {
	table := NewTable(3)

	t.Run("ReplaceKeepsSlot", func(t *testing.T) {
		table.Reset()
		for _, n := range []util.PageNumber{1, 2, 3} {
			require.NoError(t, table.Insert(page.New(n)))
		}
		require.NoError(t, table.EvictAndInsert(2, page.New(8)))

		assert.False(t, table.Contains(2), "victim gone")
		assert.True(t, table.Contains(8), "new page resident")
		assert.Equal(t, 3, table.Size())
		numbers := []util.PageNumber{}
		for _, p := range table.Pages() {
			numbers = append(numbers, p.Number)
		}
		assert.Equal(t, []util.PageNumber{1, 8, 3}, numbers, "new page takes victim's slot")
		assert.Equal(t, 1, table.pageToIdx[8])
	})

	t.Run("VictimMissing", func(t *testing.T) {
		table.Reset()
		require.NoError(t, table.Insert(page.New(1)))
		err := table.EvictAndInsert(5, page.New(6))
		assert.ErrorIs(t, err, util.ErrPageNotResident)
		assert.False(t, table.Contains(6))
	})

	t.Run("NewPageAlreadyResident", func(t *testing.T) {
		table.Reset()
		require.NoError(t, table.Insert(page.New(1)))
		require.NoError(t, table.Insert(page.New(2)))
		err := table.EvictAndInsert(1, page.New(2))
		assert.ErrorIs(t, err, util.ErrPageAlreadyResident)
		assert.True(t, table.Contains(1), "victim kept on failure")
	})
}

func TestPagesIsCopy(t *testing.T) {
	table := NewTable(1)
	require.NoError(t, table.Insert(page.New(1)))
	pages := table.Pages()
	pages[0].References = 100

	p, _ := table.Get(1)
	assert.Equal(t, 0, p.References, "callers cannot mutate resident pages")
}
