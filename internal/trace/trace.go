package trace

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Format is the on-disk encoding of a trace file
type Format int

const (
	FormatPlain Format = iota
	FormatSnappy
	FormatLZ4
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatSnappy:
		return "snappy"
	case FormatLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the encoding from the file extension: .sz and .lz4 are
// compressed streams, anything else is plain text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sz", ".snappy":
		return FormatSnappy
	case ".lz4":
		return FormatLZ4
	default:
		return FormatPlain
	}
}

// Parse reads one page number per line. Blank lines are skipped; anything
// else that is not a non-negative integer is rejected.
func Parse(r io.Reader) ([]util.PageNumber, error) {
	var refs []util.PageNumber
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, util.NewSimulationError(util.ErrTypeTraceIntegrity,
				fmt.Sprintf("line %d: %q is not a page number", line, text), util.ErrMalformedTrace).
				With("line", line)
		}
		if n < 0 {
			return nil, util.NewSimulationError(util.ErrTypeTraceIntegrity,
				fmt.Sprintf("line %d: %d", line, n), util.ErrNegativePage).
				With("line", line)
		}
		refs = append(refs, util.PageNumber(n))
	}
	if err := scanner.Err(); err != nil {
		return nil, util.NewSimulationError(util.ErrTypeIO, "read trace", err)
	}
	return refs, nil
}

// Load reads the trace at path, decoding it according to FormatOf.
func Load(path string) ([]util.PageNumber, error) {
	format := FormatOf(path)
	if format == FormatPlain {
		mf, err := OpenMapped(path)
		if err != nil {
			return nil, util.NewSimulationError(util.ErrTypeIO, fmt.Sprintf("open trace %s", path), err)
		}
		defer mf.Close()
		return Parse(mf.Reader())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, util.NewSimulationError(util.ErrTypeIO, fmt.Sprintf("open trace %s", path), err)
	}
	defer f.Close()

	switch format {
	case FormatSnappy:
		return Parse(snappy.NewReader(f))
	default:
		return Parse(lz4.NewReader(f))
	}
}

// Write emits refs one per line.
func Write(w io.Writer, refs []util.PageNumber) error {
	bw := bufio.NewWriter(w)
	for _, ref := range refs {
		if _, err := bw.WriteString(strconv.FormatUint(uint64(ref), 10)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes refs to path, compressing according to FormatOf.
func WriteFile(path string, refs []util.PageNumber) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("[trace] [WriteFile] create: %w", err)
	}
	defer func() {
		if e := f.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("[trace] [WriteFile] close: %w", e))
		}
	}()

	var buf bytes.Buffer
	if err := Write(&buf, refs); err != nil {
		return fmt.Errorf("[trace] [WriteFile] encode: %w", err)
	}

	switch FormatOf(path) {
	case FormatSnappy:
		zw := snappy.NewBufferedWriter(f)
		if _, err := zw.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("[trace] [WriteFile] snappy: %w", err)
		}
		return zw.Close()
	case FormatLZ4:
		zw := lz4.NewWriter(f)
		if _, err := zw.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("[trace] [WriteFile] lz4: %w", err)
		}
		return zw.Close()
	default:
		_, err := f.Write(buf.Bytes())
		return err
	}
}
