package page

import (
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

func CreateTestPage(number util.PageNumber, arrival util.Tick, lastUse util.Tick, refs int) Page {
	return Page{
		Number:      number,
		ArrivalTime: arrival,
		LastUseTime: lastUse,
		References:  refs,
	}
}
