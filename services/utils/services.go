package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ava-labs/ava-explorer/services/api"
)

// Decode body from the request into value.
// Any error is written into the response and false is returned.
// (It is enough to just return from the request handler on false value)
func DecodeBody(w http.ResponseWriter, r *http.Request, value any) bool {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(&value)
	if err != nil {
		WriteApiResponseError(w, api.ApiResStatusRequestBodyError,
			"error parsing request body", err.Error())
		return false
	}
	err = validate.Struct(value)
	if err != nil {
		WriteApiResponseError(w, api.ApiResStatusRequestBodyError,
			"error validating request body", err.Error())
		return false
	}
	return true
}

// Write value into w as json. Handles possible error as internal server error
func WriteResponse(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(&value)
	if err != nil {
		http.Error(w, fmt.Sprintf("error writing response: %v", err), http.StatusInternalServerError)
	}
}

// Writes value as data field in ApiResponse
func WriteApiResponse[T any](w http.ResponseWriter, status api.ApiResStatusEnum, value T) {
	response := api.ApiResponseWrapper[T]{
		Status: status,
		Data:   value,
	}
	WriteResponse(w, response)
}

func WriteApiResponseOk(w http.ResponseWriter, value any) {
	WriteApiResponse(w, api.ApiResStatusOk, value)
}

func WriteApiResponseError(
	w http.ResponseWriter,
	status api.ApiResStatusEnum,
	errorMessage string,
	errorDetails string,
) {
	response := api.ApiResponseWrapper[any]{
		Status:       status,
		ErrorDetails: errorDetails,
		ErrorMessage: errorMessage,
	}
	WriteResponse(w, response)
}
