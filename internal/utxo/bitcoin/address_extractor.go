package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-addrparser/internal/utxo/model"
)

// AddressExtractor derives human-readable addresses from output scripts.
type AddressExtractor struct {
	params *chaincfg.Params
}

// NewAddressExtractor initializes an extractor that encodes addresses for the provided network.
func NewAddressExtractor(network model.Network) (*AddressExtractor, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &AddressExtractor{params: params}, nil
}

// Extract returns the addresses paid by pkScript. Non-standard scripts yield none.
func (e *AddressExtractor) Extract(pkScript []byte) ([]string, error) {
	if len(pkScript) == 0 {
		return nil, nil
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, e.params)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, nil
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
