package frame

import (
	"fmt"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Table holds the resident pages of one algorithm run.
// Slots keep insertion order; a replaced page takes its victim's slot.
type Table struct {
	slots     []page.Page
	pageToIdx map[util.PageNumber]int // Map page number to slot index
	capacity  int
}

// NewTable initializes an empty frame table.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		panic(util.ErrInvalidFrameCapacity)
	}
	return &Table{
		slots:     make([]page.Page, 0, capacity),
		pageToIdx: make(map[util.PageNumber]int, capacity),
		capacity:  capacity,
	}
}

func (t *Table) Contains(number util.PageNumber) bool {
	_, ok := t.pageToIdx[number]
	return ok
}

// Insert appends p to a free slot. Callers must evict first when the table is full.
func (t *Table) Insert(p page.Page) error {
	if len(t.slots) >= t.capacity {
		return fmt.Errorf("[frame] [Insert] page %d: %w", p.Number, util.ErrFrameTableFull)
	}
	if t.Contains(p.Number) {
		return fmt.Errorf("[frame] [Insert] page %d: %w", p.Number, util.ErrPageAlreadyResident)
	}

	t.pageToIdx[p.Number] = len(t.slots)
	t.slots = append(t.slots, p)
	return nil
}

// UpdateMetadata refreshes one field of a resident page.
func (t *Table) UpdateMetadata(number util.PageNumber, field page.Field, value int) error {
	idx, ok := t.pageToIdx[number]
	if !ok {
		return fmt.Errorf("[frame] [UpdateMetadata] page %d: %w", number, util.ErrPageNotResident)
	}
	return t.slots[idx].Set(field, value)
}

// EvictAndInsert replaces victim with p in the victim's slot.
func (t *Table) EvictAndInsert(victim util.PageNumber, p page.Page) error {
	idx, ok := t.pageToIdx[victim]
	if !ok {
		return fmt.Errorf("[frame] [EvictAndInsert] victim %d: %w", victim, util.ErrPageNotResident)
	}
	if p.Number != victim && t.Contains(p.Number) {
		return fmt.Errorf("[frame] [EvictAndInsert] page %d: %w", p.Number, util.ErrPageAlreadyResident)
	}

	delete(t.pageToIdx, victim)
	t.slots[idx] = p
	t.pageToIdx[p.Number] = idx
	return nil
}

// Get returns a copy of the resident page.
func (t *Table) Get(number util.PageNumber) (page.Page, bool) {
	idx, ok := t.pageToIdx[number]
	if !ok {
		return page.Page{}, false
	}
	return t.slots[idx], true
}

// At returns the page in slot i, in iteration order.
func (t *Table) At(i int) page.Page {
	return t.slots[i]
}

// Pages returns a copy of the resident pages in slot order.
func (t *Table) Pages() []page.Page {
	out := make([]page.Page, len(t.slots))
	copy(out, t.slots)
	return out
}

func (t *Table) Size() int {
	return len(t.slots)
}

func (t *Table) Capacity() int {
	return t.capacity
}

func (t *Table) Full() bool {
	return len(t.slots) == t.capacity
}

// Reset empties the table, keeping its capacity. For testing purpose.
func (t *Table) Reset() {
	t.slots = t.slots[:0]
	t.pageToIdx = make(map[util.PageNumber]int, t.capacity)
}
