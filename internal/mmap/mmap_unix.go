//go:build unix

// Package mmap maps generated lexicon files into memory read-only.
package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mmap maps size bytes of fd starting at offset for reading.
func Mmap(fd *os.File, offset int64, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(int(fd.Fd()), offset, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}
	return b, nil
}

func Munmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}
