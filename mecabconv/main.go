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
	%s [-o file] [-s file] [-l id] [-r id] [-c cost] [-a notation] [-k] [-q] file1 [file2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath   string
		settingspath string
		leftId       int
		rightId      int
		cost         int
		notation     string
		katakana     bool
		quiet        bool
	)
	flag.StringVar(&outputpath, "o", "", "output to file (default: stdout)")
	flag.StringVar(&settingspath, "s", "", "settings file")
	flag.IntVar(&leftId, "l", 0, "left context id")
	flag.IntVar(&rightId, "r", 0, "right context id")
	flag.IntVar(&cost, "c", 1, "word cost")
	flag.StringVar(&notation, "a", "", "accent notation: digits or keihan")
	flag.BoolVar(&katakana, "k", false, "write the pronunciation in katakana")
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
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "l":
			bc.LeftId = leftId
		case "r":
			bc.RightId = rightId
		case "c":
			bc.Cost = cost
		case "a":
			bc.AccentNotation = notation
		}
	})
	if katakana {
		err = settings.AddPronunciationPlugin("KatakanaPronunciationPlugin")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
	}

	converter, err := kansaiaccent.NewConverter(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	progress := io.Writer(os.Stderr)
	if quiet {
		progress = io.Discard
	}

	var words int
	convert := func(w io.Writer) error {
		fmt.Fprint(progress, "reading the source file...")
		for _, lexiconpath := range flag.Args() {
			n, err := build(converter, lexiconpath, w)
			words += n
			if err != nil {
				fmt.Fprintln(progress)
				return fmt.Errorf("%s: %s", lexiconpath, err)
			}
		}
		p := message.NewPrinter(language.English)
		p.Fprintf(progress, " %d words\n", words)
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

func build(converter *kansaiaccent.Converter, lexiconpath string, w io.Writer) (int, error) {
	lexiconReader, err := os.OpenFile(lexiconpath, os.O_RDONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer lexiconReader.Close()

	stats, err := converter.ConvertMecab(lexiconReader, w)
	return stats.Rows, err
}
