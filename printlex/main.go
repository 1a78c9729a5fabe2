package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/nullponull/kansai-accent-dictionary/dictionary"
	"github.com/nullponull/kansai-accent-dictionary/internal/mmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type mmapLexicon struct {
	fd *os.File
	m  []byte
}

func (ml *mmapLexicon) mclose() {
	mmap.Munmap(ml.m)
	ml.fd.Close()
}

func readLexicon(lexiconpath string) (*mmapLexicon, error) {
	lexf, err := os.OpenFile(lexiconpath, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}

	finfo, err := lexf.Stat()
	if err != nil {
		lexf.Close()
		return nil, err
	}

	bytebuffer, err := mmap.Mmap(lexf, 0, finfo.Size())
	if err != nil {
		lexf.Close()
		return nil, err
	}

	return &mmapLexicon{
		fd: lexf,
		m:  bytebuffer,
	}, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s [-t] [-c] file

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		summary bool
		check   bool
	)
	flag.BoolVar(&summary, "t", false, "print the number of words per part of speech")
	flag.BoolVar(&check, "c", false, "check accent cores against the readings")

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	ml, err := readLexicon(flag.Args()[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	defer ml.mclose()

	bufout := bufio.NewWriter(os.Stdout)
	defer bufout.Flush()

	posCounts := redblacktree.NewWith(utils.StringComparator)
	var words, violations int

	lr := dictionary.NewLexiconRowReader(bytes.NewReader(ml.m))
	for {
		row, err := lr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			bufout.Flush()
			fmt.Fprintf(os.Stderr, "%s: %s\n", flag.Args()[0], err)
			os.Exit(1)
		}
		words++

		if check {
			if n := dictionary.MoraCount(row.Reading); row.AccentCore < 0 || row.AccentCore > n {
				violations++
				fmt.Fprintf(os.Stderr, "accent core %d out of range 0..%d: %s at line %d\n",
					row.AccentCore, n, row.Surface, lr.NumLine())
			}
		}

		if summary {
			key := row.Pos.String()
			v, ok := posCounts.Get(key)
			if !ok {
				posCounts.Put(key, 1)
			} else {
				posCounts.Put(key, v.(int)+1)
			}
			continue
		}
		if !check {
			fmt.Fprintf(bufout, "%s\t%s\t%s\t%d\t%s\n",
				row.Surface,
				row.Reading,
				row.Pronunciation,
				row.AccentCore,
				strings.TrimRight(row.Pos.String(), ",*"),
			)
		}
	}

	p := message.NewPrinter(language.English)
	if summary {
		it := posCounts.Iterator()
		for it.Next() {
			p.Fprintf(bufout, "%s\t%d\n", it.Key(), it.Value())
		}
	}
	if summary || check {
		p.Fprintf(os.Stderr, "%d words\n", words)
	}
	if violations > 0 {
		bufout.Flush()
		p.Fprintf(os.Stderr, "%d accent cores out of range\n", violations)
		os.Exit(1)
	}
}
