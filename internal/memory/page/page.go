package page

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Field names a piece of per-page metadata the engine may refresh in place
type Field int

const (
	FieldLastUse Field = iota
	FieldReferences
)

func (f Field) String() string {
	switch f {
	case FieldLastUse:
		return "last_use_time"
	case FieldReferences:
		return "reference_count"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Page is one entry of the frame table
type Page struct {
	Number      util.PageNumber
	ArrivalTime util.Tick // FIFO
	LastUseTime util.Tick // LRU, NoTick until referenced
	References  int       // MFU
}

// New builds the metadata copy of a trace reference
func New(number util.PageNumber) Page {
	return Page{
		Number:      number,
		ArrivalTime: 0,
		LastUseTime: util.NoTick,
		References:  0,
	}
}

// Set stores value into the given field
func (p *Page) Set(field Field, value int) error {
	switch field {
	case FieldLastUse:
		p.LastUseTime = util.Tick(value)
	case FieldReferences:
		p.References = value
	default:
		return fmt.Errorf("[page] [Set] %v: %w", field, util.ErrUnknownField)
	}
	return nil
}

func (p Page) String() string {
	return fmt.Sprintf("page{%d arrival=%d last=%d refs=%d}", p.Number, p.ArrivalTime, p.LastUseTime, p.References)
}
