package usecase

import (
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/datagateway"
)

type Usecase struct {
	orc20Dg datagateway.ORC20ReaderDataGateway
	cacheDg datagateway.CacheDataGateway
}

func New(orc20Dg datagateway.ORC20ReaderDataGateway, cacheDg datagateway.CacheDataGateway) *Usecase {
	return &Usecase{
		orc20Dg: orc20Dg,
		cacheDg: cacheDg,
	}
}
