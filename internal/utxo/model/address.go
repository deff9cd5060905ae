// Package model defines domain models for address extraction.
package model

import "time"

// ExtractedAddress is one address paid by a transaction output found in a block file.
type ExtractedAddress struct {
	Coin        Coin
	Network     Network
	BlockFile   string
	BlockHash   string
	BlockTime   time.Time
	TxID        string
	OutputIndex uint32
	Value       uint64
	Address     string
}
