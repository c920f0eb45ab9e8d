package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/sim"
)

const (
	bannerWidth = 60
	ruleWidth   = 68
)

// Table describes one simulation to render.
type Table struct {
	FrameSize    int
	IntervalSize int
	Runs         []sim.Run
}

// Intervals is the number of rate columns: the longest sample sequence.
func (t Table) Intervals() int {
	n := 0
	for _, run := range t.Runs {
		n = max(n, len(run.IntervalFaultRates))
	}
	return n
}

// WriteText renders the fixed-width text report.
func WriteText(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(bw, "  %s\n", banner)
	fmt.Fprintf(bw, "    Page Replacement Algorithm Simulation (frame size = %d)\n", t.FrameSize)
	fmt.Fprintf(bw, "  %s\n", banner)
	fmt.Fprintf(bw, "%sPage fault rates\n", strings.Repeat(" ", 40))
	fmt.Fprint(bw, "Algorithm  Total page faults  ")
	for i := 1; i <= t.Intervals(); i++ {
		fmt.Fprintf(bw, "%d    ", i*t.IntervalSize)
	}
	fmt.Fprintf(bw, "\n%s\n", strings.Repeat("-", ruleWidth))

	for _, run := range t.Runs {
		fmt.Fprintf(bw, "%-7s%13d", run.Algorithm, run.TotalFaults)
		for j, rate := range run.IntervalFaultRates {
			width := 8
			if j == 0 {
				width = 15
			}
			fmt.Fprintf(bw, "%*.3f", width, rate)
		}
		fmt.Fprint(bw, "\n\n")
	}

	return bw.Flush()
}

// WriteCSV renders the report as CSV records.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	header := []string{"Algorithm", "Total page faults"}
	for i := 1; i <= t.Intervals(); i++ {
		header = append(header, strconv.Itoa(i*t.IntervalSize))
	}
	records := [][]string{{strconv.Itoa(t.FrameSize)}, header}

	for _, run := range t.Runs {
		record := []string{run.Algorithm.String(), strconv.Itoa(run.TotalFaults)}
		for _, rate := range run.IntervalFaultRates {
			record = append(record, strconv.FormatFloat(rate, 'g', 6, 64))
		}
		records = append(records, record)
	}

	return cw.WriteAll(records)
}

// AppendFile opens path for appending, creating it if needed, and hands it to write.
// Successive simulations accumulate in the same report.
func AppendFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("[report] [AppendFile] open %s: %w", path, err)
	}
	defer func() {
		if e := f.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("[report] [AppendFile] close: %w", e))
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("[report] [AppendFile] write %s: %w", path, err)
	}
	return nil
}
