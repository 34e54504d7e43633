package api

type ApiResStatusEnum string

const (
	ApiResStatusOk               ApiResStatusEnum = "OK"
	ApiResStatusRequestBodyError ApiResStatusEnum = "REQUEST_BODY_ERROR"
	ApiResStatusNotFound         ApiResStatusEnum = "NOT_FOUND"
	ApiResStatusUpstreamError    ApiResStatusEnum = "UPSTREAM_ERROR"
	ApiResStatusInternalError    ApiResStatusEnum = "INTERNAL_ERROR"
)

type ApiResponseWrapper[T any] struct {
	Status       ApiResStatusEnum `json:"status"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ErrorDetails string           `json:"errorDetails,omitempty"`
	Data         T                `json:"data"`
}
