package routes

import (
	"github.com/ava-labs/ava-explorer/explorer"
	"github.com/ava-labs/ava-explorer/normalize"
	"github.com/ava-labs/ava-explorer/services/api"
	"github.com/ava-labs/ava-explorer/services/utils"

	"github.com/pkg/errors"
)

type PaginatedRequest struct {
	Limit int    `json:"limit" validate:"gte=0,lte=5000"`
	Next  string `json:"next"`
}

func errorHandler(err error) *utils.ErrorHandler {
	switch {
	case errors.Is(err, explorer.ErrNotFound):
		return utils.ApiResponseErrorHandler(api.ApiResStatusNotFound, "record not found", err.Error())
	case errors.Is(err, normalize.ErrMintRightsNotFound) || errors.Is(err, normalize.ErrRedemptionNotFound):
		return utils.ApiResponseErrorHandler(api.ApiResStatusNotFound, err.Error(), "")
	case errors.Is(err, explorer.ErrFetchFailed):
		return utils.ApiResponseErrorHandler(api.ApiResStatusUpstreamError, "upstream fetch failed", err.Error())
	case errors.Is(err, normalize.ErrMalformedRecord):
		return utils.ApiResponseErrorHandler(api.ApiResStatusInternalError, "malformed upstream record", err.Error())
	default:
		return utils.InternalServerErrorHandler(err)
	}
}
