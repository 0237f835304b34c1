package batch

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

type Writer struct {
	buf    *bufio.Writer
	logger *zerolog.Logger
}

func NewWriter(output io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != "jsonl" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Writer{
		buf:    bufio.NewWriter(output),
		logger: logger,
	}, nil
}

func (w *Writer) Write(record OutputRecord) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal output record: %w", err)
	}
	if _, err := w.buf.Write(line); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

func (w *Writer) Close() error {
	return w.buf.Flush()
}
