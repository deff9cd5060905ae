package extractor

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AddressExtractor interface {
		Extract(pkScript []byte) ([]string, error)
	}
	AddressWriter interface {
		Write(ctx context.Context, rows []model.ExtractedAddress) error
		Flush(ctx context.Context) error
	}
	Metrics interface {
		ObserveFile(err error, started time.Time)
		ObserveAddresses(count int)
		ObserveBlock()
		ObserveRejected(reason string)
	}
)
