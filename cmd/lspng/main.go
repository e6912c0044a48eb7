package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ysh86/lspic/png"
	"github.com/ysh86/lspic/report"
	"github.com/ysh86/lspic/steg"
)

func dumpFile(w io.Writer, buf []byte, format string) error {
	file, err := png.NewFile(buf)
	if err != nil {
		return err
	}
	parseErr := file.Parse()

	switch format {
	case "cbor":
		r, err := report.New(file)
		if err != nil {
			return err
		}
		data, err := report.Encode(r)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		file.DumpTo(w)
	}

	if h, ok := file.Header(); ok {
		slog.Debug("image header", "width", h.Width, "height", h.Height, "depth", h.BitDepth, "color", h.ColorType)
	} else {
		slog.Warn("stream does not start with IHDR")
	}
	if parseErr != nil {
		slog.Warn("scan stopped early", "error", parseErr)
	} else if err := file.Validate(); err != nil {
		slog.Warn("file is not well formed", "error", err)
	}
	return nil
}

func reveal(w io.Writer, buf []byte, method string, opts steg.Options) error {
	m, err := steg.ParseMethod(method)
	if err != nil {
		return err
	}
	codec, err := steg.New(m, opts)
	if err != nil {
		return err
	}
	message, ok, err := codec.Reveal(buf)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(w, "No secret message was present (%s)\n", m)
		return nil
	}
	fmt.Fprintf(w, "Decoded text: %s\n", message)
	return nil
}

func hide(buf []byte, method, message, output string, opts steg.Options) error {
	m, err := steg.ParseMethod(method)
	if err != nil {
		return err
	}
	codec, err := steg.New(m, opts)
	if err != nil {
		return err
	}
	out, err := codec.Hide(buf, message)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return err
	}
	slog.Info("message written", "method", m.String(), "file", output, "bytes", len(out))
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f := NewFlags(args[0], stderr)
	if err := f.Parse(args[1:]); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: f.Level()}))
	slog.SetDefault(logger)
	opts := steg.Options{Logger: logger, Strict: f.Strict, Tag: f.ChunkTag}

	buf, err := os.ReadFile(f.SrcFile)
	if err != nil {
		return err
	}

	if f.Info {
		if err := dumpFile(stdout, buf, f.Format); err != nil {
			return err
		}
	}
	if f.Reveal != "" {
		if err := reveal(stdout, buf, f.Reveal, opts); err != nil {
			return err
		}
	}
	if f.Hide != "" {
		if err := hide(buf, f.Hide, f.Message, f.Output, opts); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("lspng failed", "error", err)
		os.Exit(1)
	}
}
