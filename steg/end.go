package steg

import "log/slog"

// EndOfStream hides the message in the bytes after IEND. Readers stop at IEND
// and never see them.
type EndOfStream struct {
	opts   Options
	logger *slog.Logger
}

// NewEndOfStream creates an end-of-stream codec.
func NewEndOfStream(opts Options) *EndOfStream {
	return &EndOfStream{opts: opts, logger: opts.logger()}
}

// Hide places message right after IEND. Bytes that already followed IEND are
// replaced, so Reveal returns exactly message. An empty message leaves no
// trailing bytes.
func (e *EndOfStream) Hide(buf []byte, message string) ([]byte, error) {
	end, err := scanToEnd(buf, e.opts.Strict, nil)
	if err != nil {
		return nil, err
	}
	offset := end.End()
	if n := len(buf) - offset; n > 0 {
		e.logger.Debug("replacing trailing data", "offset", offset, "bytes", n)
	}

	out := make([]byte, 0, offset+len(message))
	out = append(out, buf[:offset]...)
	out = append(out, message...)

	e.logger.Debug("message appended after IEND", "offset", offset, "bytes", len(message))
	return out, nil
}

// Reveal returns the bytes after IEND as text.
func (e *EndOfStream) Reveal(buf []byte) (string, bool, error) {
	end, err := scanToEnd(buf, e.opts.Strict, nil)
	if err != nil {
		return "", false, err
	}
	offset := end.End()
	if offset == len(buf) {
		return "", false, nil
	}

	message, err := decodeText(buf[offset:])
	if err != nil {
		return "", false, err
	}
	e.logger.Debug("message found after IEND", "offset", offset, "bytes", len(message))
	return message, true, nil
}
