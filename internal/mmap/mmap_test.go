//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kansai.csv")
	want := "はな,0,0,1,名詞,一般,*,*,*,*,はな,はな,はな,0\n"
	if err := os.WriteFile(path, []byte(want), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b, err := Mmap(f, 0, int64(len(want)))
	if err != nil {
		t.Fatalf("fail to map: %s", err)
	}
	if string(b) != want {
		t.Errorf("invalid result. want = %q, got = %q", want, b)
	}
	if err := Munmap(b); err != nil {
		t.Errorf("fail to unmap: %s", err)
	}
}

func TestMmap_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	b, err := Mmap(f, 0, 0)
	if err != nil || len(b) != 0 {
		t.Errorf("invalid result. want = empty, got = %q (%v)", b, err)
	}
	if err := Munmap(b); err != nil {
		t.Errorf("fail to unmap: %s", err)
	}
}
