package routes

import (
	"context"
	"net/http"

	"github.com/ava-labs/ava-explorer/normalize"
	servicesContext "github.com/ava-labs/ava-explorer/services/context"
	"github.com/ava-labs/ava-explorer/services/utils"
)

type stakingRouteHandlers struct {
	service *normalize.Service
}

func newStakingRouteHandlers(ctx servicesContext.ServicesContext) *stakingRouteHandlers {
	return &stakingRouteHandlers{
		service: ctx.Service(),
	}
}

func (rh *stakingRouteHandlers) rewardStatus() utils.RouteHandler {
	handler := func(params map[string]string) (normalize.RewardStatus, *utils.ErrorHandler) {
		status, err := rh.service.GetRewardStatus(context.Background(), params["tx_id"])
		if err != nil {
			return normalize.RewardStatus{}, errorHandler(err)
		}
		return status, nil
	}
	return utils.NewParamRouteHandler(handler, http.MethodGet,
		map[string]string{"tx_id": "Stake-add transaction id"}, normalize.RewardStatus{})
}

func AddStakingRoutes(router utils.Router, ctx servicesContext.ServicesContext) {
	rh := newStakingRouteHandlers(ctx)
	subrouter := router.WithPrefix("/staking", "Staking")
	subrouter.AddRoute("/reward_status/{tx_id:[0-9a-zA-Z]+}", rh.rewardStatus(),
		"Reward status of a staking transaction")
}
