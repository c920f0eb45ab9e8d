package trace

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

/**
* A plain trace file is mapped read-only into memory so large traces are
* parsed straight from the page cache.
**/
type MappedFile struct {
	File   *os.File
	Data   []byte
	Size   int64
	handle uintptr // mapping handle, windows only
}

func OpenMapped(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	mf := &MappedFile{File: f}
	if info.Size() == 0 {
		return mf, nil
	}

	if err := mmap(mf, info.Size()); err != nil {
		f.Close()
		return nil, fmt.Errorf("map file fail: %w", err)
	}
	return mf, nil
}

// Reader returns a reader over the mapped bytes. It is invalid after Close.
func (mf *MappedFile) Reader() *bytes.Reader {
	return bytes.NewReader(mf.Data)
}

/**
* CLOSE FUNCTION
**/
func (mf *MappedFile) Close() error {
	if mf == nil {
		return nil // Idempotent
	}
	var err error
	if e := munmap(mf); e != nil {
		err = fmt.Errorf("[close] unmap file fail: %w", e)
	}

	if mf.File != nil {
		if e := mf.File.Close(); e != nil {
			err = errors.Join(err, fmt.Errorf("close file: %w", e))
		}
		mf.File = nil
	}
	return err
}
