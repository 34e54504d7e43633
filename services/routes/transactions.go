package routes

import (
	"context"
	"net/http"

	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/normalize"
	"github.com/ava-labs/ava-explorer/services/api"
	servicesContext "github.com/ava-labs/ava-explorer/services/context"
	"github.com/ava-labs/ava-explorer/services/utils"
	"github.com/ava-labs/ava-explorer/store"
)

type ListTransactionsRequest struct {
	PaginatedRequest
	Address   string `json:"address"`
	AssetID   string `json:"assetID" validate:"omitempty,tx-id"`
	ChainID   string `json:"chainID" validate:"omitempty,tx-id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type transactionRouteHandlers struct {
	service *normalize.Service
	store   *store.Store
}

func newTransactionRouteHandlers(ctx servicesContext.ServicesContext) *transactionRouteHandlers {
	return &transactionRouteHandlers{
		service: ctx.Service(),
		store:   ctx.Store(),
	}
}

func (rh *transactionRouteHandlers) listTransactions() utils.RouteHandler {
	handler := func(request ListTransactionsRequest) (api.ApiTxQuery, *utils.ErrorHandler) {
		query, err := rh.service.GetTransactions(context.Background(), &explorer.TxQueryParams{
			Address:    request.Address,
			AssetID:    request.AssetID,
			ChainID:    request.ChainID,
			StartTime:  request.StartTime,
			EndTime:    request.EndTime,
			Limit:      request.Limit,
			NextCursor: request.Next,
		})
		if err != nil {
			return api.ApiTxQuery{}, errorHandler(err)
		}
		rh.store.SetQuery(queryContext(&request), query)
		return api.NewApiTxQuery(query), nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, ListTransactionsRequest{}, api.ApiTxQuery{})
}

func (rh *transactionRouteHandlers) getTransaction() utils.RouteHandler {
	handler := func(params map[string]string) (api.ApiTransaction, *utils.ErrorHandler) {
		tx, err := rh.service.GetTransaction(context.Background(), params["tx_id"])
		if err != nil {
			return api.ApiTransaction{}, errorHandler(err)
		}
		rh.store.SetTransaction(tx)
		return api.NewApiTransaction(tx), nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"tx_id": "Transaction id"}, api.ApiTransaction{})
}

func (rh *transactionRouteHandlers) recentTransactions() utils.RouteHandler {
	handler := func(params map[string]string) (api.ApiTxQuery, *utils.ErrorHandler) {
		return api.NewApiTxQuery(rh.store.Query(store.QueryRecent)), nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{}, api.ApiTxQuery{})
}

// The store slot a list result lands in depends on how the query was
// filtered, one slot per query context as in the presentation layer
func queryContext(request *ListTransactionsRequest) store.QueryContext {
	switch {
	case len(request.Address) > 0:
		return store.QueryByAddress
	case len(request.AssetID) > 0:
		return store.QueryByAsset
	case len(request.ChainID) > 0:
		return store.QueryByChain
	case len(request.StartTime) > 0 || len(request.EndTime) > 0:
		return store.QueryRecent
	default:
		return store.QueryUnfiltered
	}
}

func AddTransactionRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newTransactionRouteHandlers(ctx)
	subrouter := router.WithPrefix("/transactions", "Transactions")
	subrouter.AddRoute("/list", rh.listTransactions(), "List transactions matching a filter")
	subrouter.AddRoute("/get/{tx_id:[0-9a-zA-Z]+}", rh.getTransaction(), "Get one transaction")
	subrouter.AddRoute("/recent", rh.recentTransactions(), "Latest cached recent-transactions page")
}
