package routes

import (
	"context"
	"net/http"

	"github.com/ava-labs/ava-explorer/normalize"
	servicesContext "github.com/ava-labs/ava-explorer/services/context"
	"github.com/ava-labs/ava-explorer/services/utils"
)

type nftRouteHandlers struct {
	service *normalize.Service
}

func newNftRouteHandlers(ctx servicesContext.ServicesContext) *nftRouteHandlers {
	return &nftRouteHandlers{
		service: ctx.Service(),
	}
}

func (rh *nftRouteHandlers) payloads() utils.RouteHandler {
	handler := func(params map[string]string) ([]normalize.NFTPayload, *utils.ErrorHandler) {
		payloads, err := rh.service.GetNFTPayloads(context.Background(), params["tx_id"])
		if err != nil {
			return nil, errorHandler(err)
		}
		return payloads, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"tx_id": "NFT family creation transaction id"}, []normalize.NFTPayload{})
}

func AddNftRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newNftRouteHandlers(ctx)
	subrouter := router.WithPrefix("/nft", "NFT")
	subrouter.AddRoute("/payloads/{tx_id:[0-9a-zA-Z]+}", rh.payloads(),
		"Payloads attached to an NFT family")
}
