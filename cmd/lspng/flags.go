package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ysh86/lspic/png"
	"github.com/ysh86/lspic/steg"
)

type Flags struct {
	Flagset *flag.FlagSet
	Info    bool
	Reveal  string
	Hide    string
	Message string
	Output  string
	Format  string
	Strict  bool
	Verbose bool
	Tag     string

	SrcFile  string
	ChunkTag png.Tag
}

func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{
		Flagset: flag.NewFlagSet(name, flag.ContinueOnError),
	}
	f.Flagset.SetOutput(output)
	f.Flagset.Usage = func() {
		fmt.Fprintf(output, "Usage of %s: [flags] src.png\n", name)
		f.Flagset.PrintDefaults()
	}
	f.Flagset.BoolVar(&f.Info, "i", false, "print the chunks of the file")
	f.Flagset.StringVar(
		&f.Reveal,
		"d",
		"",
		"decode a hidden message: end | chunk",
	)
	f.Flagset.StringVar(
		&f.Hide,
		"e",
		"",
		"encode the message after IEND or in a custom chunk: end | chunk",
	)
	f.Flagset.StringVar(&f.Message, "m", "", "message to encode")
	f.Flagset.StringVar(
		&f.Output,
		"o",
		"output.png",
		"output filename (\".png\" is appended when missing)",
	)
	f.Flagset.StringVar(
		&f.Format,
		"format",
		"text",
		"chunk listing format: text | cbor",
	)
	f.Flagset.BoolVar(
		&f.Strict,
		"strict",
		false,
		"refuse files whose IEND chunk has a bad CRC",
	)
	f.Flagset.StringVar(
		&f.Tag,
		"tag",
		"",
		"chunk type for -e chunk / -d chunk (default \"smSG\")",
	)
	f.Flagset.BoolVar(&f.Verbose, "v", false, "enable debug logging")
	return f
}

func (f *Flags) Parse(args []string) error {
	if err := f.Flagset.Parse(args); err != nil {
		return err
	}
	if f.Flagset.NArg() != 1 {
		f.Flagset.Usage()
		return fmt.Errorf("expected one src file, got %d", f.Flagset.NArg())
	}
	f.SrcFile = f.Flagset.Arg(0)

	if !strings.HasSuffix(f.Output, ".png") {
		f.Output += ".png"
	}
	if f.Format != "text" && f.Format != "cbor" {
		return fmt.Errorf("invalid format: %s", f.Format)
	}
	for _, m := range []string{f.Reveal, f.Hide} {
		if m == "" {
			continue
		}
		if _, err := steg.ParseMethod(m); err != nil {
			return err
		}
	}
	if f.Tag != "" {
		tag, err := png.NewTag(f.Tag)
		if err != nil {
			return err
		}
		f.ChunkTag = tag
	}
	if !f.Info && f.Reveal == "" && f.Hide == "" {
		f.Info = true
	}
	return nil
}

func (f *Flags) Level() slog.Level {
	if f.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
