//go:build windows

package trace

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Base on: https://github.com/etcd-io/bbolt/blob/main/bolt_windows.go

func mmap(mf *MappedFile, size int64) error {
	if mf.File == nil || size <= 0 {
		return util.ErrInvalidMapping
	}

	sizehi := uint32(size >> 32)
	sizelo := uint32(size)
	h, err := windows.CreateFileMapping(windows.Handle(mf.File.Fd()), nil, windows.PAGE_READONLY, sizehi, sizelo, nil)
	if err != nil {
		return fmt.Errorf("create mapping: %w", err)
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		if err := windows.CloseHandle(h); err != nil {
			return os.NewSyscallError("CloseHandle", err)
		}
		return fmt.Errorf("map view: %w", err)
	}

	mf.handle = uintptr(h)
	mf.Data = unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	mf.Size = size
	return nil
}

// munmap unmaps the view and releases the mapping handle.
func munmap(mf *MappedFile) error {
	if mf.Data == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&mf.Data[0]))
	var err error
	if e := windows.UnmapViewOfFile(addr); e != nil {
		err = fmt.Errorf("unmap: %w", e)
	}
	if e := windows.CloseHandle(windows.Handle(mf.handle)); e != nil {
		err = errors.Join(err, os.NewSyscallError("CloseHandle", e))
	}

	mf.Data = nil
	mf.Size = 0
	mf.handle = 0
	return err
}
