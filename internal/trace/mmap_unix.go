//go:build unix

package trace

import (
	"fmt"

	"golang.org/x/sys/unix"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

func mmap(mf *MappedFile, size int64) error {
	if mf.File == nil || size <= 0 {
		return util.ErrInvalidMapping
	}

	data, err := unix.Mmap(int(mf.File.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap: %w", err)
	}
	mf.Data = data
	mf.Size = size
	return nil
}

func munmap(mf *MappedFile) error {
	if mf.Data == nil {
		return nil
	}

	err := unix.Munmap(mf.Data)
	mf.Data = nil
	mf.Size = 0
	if err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
