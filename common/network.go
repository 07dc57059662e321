package common

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/common/errs"
)

// Network is the bitcoin network the indexed inscriptions live on.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkSignet  Network = "signet"
	NetworkRegtest Network = "regtest"
)

var chainParams = map[Network]*chaincfg.Params{
	NetworkMainnet: &chaincfg.MainNetParams,
	NetworkTestnet: &chaincfg.TestNet3Params,
	NetworkSignet:  &chaincfg.SigNetParams,
	NetworkRegtest: &chaincfg.RegressionNetParams,
}

func (n Network) IsSupported() bool {
	_, ok := chainParams[n]
	return ok
}

func (n Network) ChainParams() *chaincfg.Params {
	return chainParams[n]
}

func (n Network) String() string {
	return string(n)
}

// DecodeAddress decodes a bitcoin address and checks that it belongs to the network.
func (n Network) DecodeAddress(address string) (btcutil.Address, error) {
	params := n.ChainParams()
	if params == nil {
		return nil, errors.Wrapf(errs.Unsupported, "network %q", n)
	}
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, errors.Wrap(errs.InvalidArgument, err.Error())
	}
	if !addr.IsForNet(params) {
		return nil, errors.Wrapf(errs.InvalidArgument, "address is not for %s", n)
	}
	return addr, nil
}
