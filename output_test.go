package kansaiaccent

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kansai.csv")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "はな,0,0,1,名詞,一般,*,*,*,*,はな,はな,はな,0\n")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "はな,0,0,1,名詞,一般,*,*,*,*,はな,はな,はな,0\n"; string(b) != want {
		t.Errorf("invalid result. want = %q, got = %q", want, b)
	}
	assertNoTempFiles(t, dir, 1)
}

func TestWriteFileAtomic_Failure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kansai.csv")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	errWrite := errors.New("entry failed")
	err := WriteFileAtomic(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return errWrite
	})
	if !errors.Is(err, errWrite) {
		t.Errorf("invalid result. want = %v, got = %v", errWrite, err)
	}
	assertContent(t, path, "old\n")
	assertNoTempFiles(t, dir, 1)

	origRename := osRename
	osRename = func(oldpath, newpath string) error {
		return errors.New("rename refused")
	}
	defer func() { osRename = origRename }()

	err = WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "new\n")
		return err
	})
	if err == nil {
		t.Errorf("expected a rename error")
	}
	assertContent(t, path, "old\n")
	assertNoTempFiles(t, dir, 1)
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != want {
		t.Errorf("invalid result. want = %q, got = %q", want, b)
	}
}

func assertNoTempFiles(t *testing.T, dir string, want int) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != want {
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("invalid result. want = %d files, got = %v", want, names)
	}
}
