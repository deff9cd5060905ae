package writer

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

// TextWriter writes one address per line.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter buffers output to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) Write(_ context.Context, rows []model.ExtractedAddress) error {
	for _, row := range rows {
		if _, err := t.w.WriteString(row.Address); err != nil {
			return fmt.Errorf("write address: %w", err)
		}
		if err := t.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write address: %w", err)
		}
	}
	return nil
}

func (t *TextWriter) Flush(context.Context) error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("flush addresses: %w", err)
	}
	return nil
}
