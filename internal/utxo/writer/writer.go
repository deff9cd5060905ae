// Package writer delivers extracted addresses to their sinks.
package writer

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Writer accepts extracted addresses. Rows may be buffered until Flush.
	Writer interface {
		Write(ctx context.Context, rows []model.ExtractedAddress) error
		Flush(ctx context.Context) error
	}
	// Repository persists extracted addresses.
	Repository interface {
		InsertExtractedAddresses(ctx context.Context, rows []model.ExtractedAddress) error
	}
)

// Multi fans rows out to several writers in order.
type Multi []Writer

// Write passes rows to every writer and stops at the first error.
func (m Multi) Write(ctx context.Context, rows []model.ExtractedAddress) error {
	for _, w := range m {
		if err := w.Write(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every writer, even after a failure, and returns the errors joined.
func (m Multi) Flush(ctx context.Context) error {
	var errs []error
	for _, w := range m {
		if err := w.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
