//go:build !unix && !windows

package trace

import (
	"fmt"
	"io"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// No mmap here: read the whole file instead.
func mmap(mf *MappedFile, size int64) error {
	if mf.File == nil || size <= 0 {
		return util.ErrInvalidMapping
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(mf.File, data); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	mf.Data = data
	mf.Size = size
	return nil
}

func munmap(mf *MappedFile) error {
	mf.Data = nil
	mf.Size = 0
	return nil
}
