package api

import (
	"github.com/gaze-network/orc20-indexer/common"
	"github.com/gaze-network/orc20-indexer/modules/orc20/api/httphandler"
	"github.com/gaze-network/orc20-indexer/modules/orc20/internal/usecase"
)

func NewHTTPHandler(network common.Network, usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(network, usecase)
}
