package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	kansaiaccent "github.com/nullponull/kansai-accent-dictionary"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s [-o file] [-s file] [-p priority] [-a notation] [-q] file1 [file2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath   string
		settingspath string
		priority     int
		notation     string
		quiet        bool
	)
	flag.StringVar(&outputpath, "o", "", "output to file (default: stdout)")
	flag.StringVar(&settingspath, "s", "", "settings file")
	flag.IntVar(&priority, "p", 0, "word priority")
	flag.StringVar(&notation, "a", "keihan", "accent notation: digits or keihan")
	flag.BoolVar(&quiet, "q", false, "do not print progress")

	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var (
		settings *kansaiaccent.SettingsJSON
		err      error
	)
	if settingspath == "" {
		settings, err = kansaiaccent.LoadDefaultSettings()
	} else {
		settings, err = kansaiaccent.LoadSettingsFile(settingspath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	bc := settings.GetBaseConfig()
	if settingspath == "" {
		bc.AccentNotation = notation
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			bc.Priority = priority
		case "a":
			bc.AccentNotation = notation
		}
	})

	converter, err := kansaiaccent.NewConverter(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	progress := io.Writer(os.Stderr)
	if quiet {
		progress = io.Discard
	}

	total := &kansaiaccent.Stats{}
	convert := func(w io.Writer) error {
		fmt.Fprint(progress, "reading the source file...")
		for _, lexiconpath := range flag.Args() {
			err := build(converter, lexiconpath, w, total)
			if err != nil {
				fmt.Fprintln(progress)
				return fmt.Errorf("%s: %s", lexiconpath, err)
			}
		}
		p := message.NewPrinter(language.English)
		p.Fprintf(progress, " %d words\n", total.Rows)
		p.Fprintf(progress, "skipped %d entries, %d duplicates\n", total.Skipped, total.Duplicates)
		return nil
	}

	if outputpath == "" {
		err = convert(os.Stdout)
	} else {
		err = kansaiaccent.WriteFileAtomic(outputpath, convert)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func build(converter *kansaiaccent.Converter, lexiconpath string, w io.Writer, total *kansaiaccent.Stats) error {
	lexiconReader, err := os.OpenFile(lexiconpath, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer lexiconReader.Close()

	stats, err := converter.ConvertVoicevox(lexiconReader, w)
	total.Entries += stats.Entries
	total.Rows += stats.Rows
	total.Skipped += stats.Skipped
	total.Duplicates += stats.Duplicates
	return err
}
