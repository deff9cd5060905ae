// Package bitcoin implements Bitcoin-specific chain logic.
package bitcoin

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

// ErrUnsupportedNetwork is returned for a network name with no chain parameters.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// ParamsForNetwork resolves chain parameters for a network name.
func ParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedNetwork, network)
	}
}

// Magic returns the four bytes that open every block record on the network.
func Magic(params *chaincfg.Params) [4]byte {
	var magic [4]byte
	binary.LittleEndian.PutUint32(magic[:], uint32(params.Net))
	return magic
}

// MagicForNetwork resolves the block record magic for a network name.
func MagicForNetwork(network model.Network) ([4]byte, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return [4]byte{}, err
	}
	return Magic(params), nil
}
