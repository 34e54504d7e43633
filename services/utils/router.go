package utils

import (
	"log"
	"net/http"

	"github.com/ava-labs/ava-explorer/logger"
	"github.com/ava-labs/ava-explorer/services/api"

	swagger "github.com/davidebianchi/gswagger"
	"github.com/davidebianchi/gswagger/support/gorilla"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/mux"
	v3 "github.com/swaggest/swgui/v3"
)

type RouteHandler struct {
	Handler            func(w http.ResponseWriter, r *http.Request)
	SwaggerDefinitions swagger.Definitions
	Method             string
}

type ErrorHandler struct {
	Handler func(w http.ResponseWriter)
}

type Router interface {
	AddRoute(path string, handler RouteHandler, description ...string)
	WithPrefix(prefix string, tag string) Router
	Finalize()
}

// Plain gorilla/mux router without generated documentation
type defaultRouter struct {
	router *mux.Router
}

func NewDefaultRouter(mRouter *mux.Router) Router {
	return &defaultRouter{router: mRouter}
}

func (r *defaultRouter) AddRoute(path string, handler RouteHandler, description ...string) {
	r.router.HandleFunc(path, handler.Handler).Methods(handler.Method)
}

func (r *defaultRouter) WithPrefix(prefix string, tag string) Router {
	return &defaultRouter{
		router: r.router.PathPrefix(prefix).Subrouter(),
	}
}

func (r *defaultRouter) Finalize() {
}

// Router generating openapi definitions from the request and response types
// of each route
type swaggerRouter struct {
	mRouter *mux.Router
	router  *swagger.Router[gorilla.HandlerFunc, *mux.Route]
	tag     string
}

func NewSwaggerRouter(mRouter *mux.Router, title string, version string) Router {
	router, _ := swagger.NewRouter(gorilla.NewRouter(mRouter), swagger.Options{
		Openapi: &openapi3.T{
			Info: &openapi3.Info{
				Title:   title,
				Version: version,
			},
		},
	})
	return &swaggerRouter{
		mRouter: mRouter,
		router:  router,
		tag:     "",
	}
}

func (r *swaggerRouter) AddRoute(path string, handler RouteHandler, description ...string) {
	swaggerDefinitions := handler.SwaggerDefinitions
	swaggerDefinitions.Tags = []string{r.tag}
	if len(description) > 0 {
		swaggerDefinitions.Summary = description[0]
		if len(description) > 1 {
			swaggerDefinitions.Description = description[1]
		}
	}

	_, err := r.router.AddRoute(handler.Method, path, handler.Handler, swaggerDefinitions)
	if err != nil {
		log.Fatal(err)
	}
}

func (r *swaggerRouter) WithPrefix(prefix string, tag string) Router {
	mSubRouter := r.mRouter.NewRoute().Subrouter()
	subRouter, _ := r.router.SubRouter(gorilla.NewRouter(mSubRouter), swagger.SubRouterOptions{
		PathPrefix: prefix,
	})
	return &swaggerRouter{
		mRouter: mSubRouter,
		router:  subRouter,
		tag:     tag,
	}
}

func (r *swaggerRouter) Finalize() {
	if err := r.router.GenerateAndExposeOpenapi(); err != nil {
		log.Fatal(err)
	}

	handler := v3.NewHandler("Explorer transactions API", "/documentation/json", "/swagger")
	r.mRouter.PathPrefix("/swagger").HandlerFunc(handler.ServeHTTP)
}

// Route handler factory. The request body is parsed into a struct of type R,
// the handler response is wrapped into an ApiResponseWrapper and returned as
// json. Openapi definitions are generated from the request and response
// objects.
func NewRouteHandler[R any, T any](
	handler func(request R) (T, *ErrorHandler),
	method string,
	requestObject R,
	respObject T,
) RouteHandler {
	routeHandler := func(w http.ResponseWriter, r *http.Request) {
		var request R
		if !DecodeBody(w, r, &request) {
			return
		}
		resp, err := handler(request)
		if err != nil {
			err.Handler(w)
			return
		}
		WriteApiResponseOk(w, resp)
	}
	wrappedRespObject := api.ApiResponseWrapper[T]{Data: respObject}
	swaggerDefinitions := swagger.Definitions{
		RequestBody: &swagger.ContentValue{
			Content: swagger.Content{
				"application/json": {Value: requestObject},
			},
		},
		Responses: map[int]swagger.ContentValue{
			200: {
				Content: swagger.Content{
					"application/json": {Value: wrappedRespObject},
				},
			},
		},
	}
	return RouteHandler{
		Handler:            routeHandler,
		SwaggerDefinitions: swaggerDefinitions,
		Method:             method,
	}
}

// Route handler factory for routes taking path parameters instead of a body.
// Openapi definitions for the parameters come from the paramDescriptions
// map.
func NewParamRouteHandler[T any](
	handler func(params map[string]string) (T, *ErrorHandler),
	method string,
	paramDescriptions map[string]string,
	respObject T,
) RouteHandler {
	routeHandler := func(w http.ResponseWriter, r *http.Request) {
		params := mux.Vars(r)
		resp, err := handler(params)
		if err != nil {
			err.Handler(w)
			return
		}
		WriteApiResponseOk(w, resp)
	}
	pathParams := make(map[string]swagger.Parameter)
	for name, description := range paramDescriptions {
		pathParams[name] = swagger.Parameter{
			Schema:      &swagger.Schema{Value: ""},
			Description: description,
		}
	}
	wrappedRespObject := api.ApiResponseWrapper[T]{Data: respObject}
	swaggerDefinitions := swagger.Definitions{
		PathParams: pathParams,
		Responses: map[int]swagger.ContentValue{
			200: {
				Content: swagger.Content{
					"application/json": {Value: wrappedRespObject},
				},
			},
		},
	}
	return RouteHandler{
		Handler:            routeHandler,
		SwaggerDefinitions: swaggerDefinitions,
		Method:             method,
	}
}

func InternalServerErrorHandler(err error) *ErrorHandler {
	return &ErrorHandler{
		Handler: func(w http.ResponseWriter) {
			logger.Error("Internal error: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		},
	}
}

func HttpErrorHandler(code int, err string) *ErrorHandler {
	return &ErrorHandler{
		Handler: func(w http.ResponseWriter) {
			http.Error(w, err, code)
		},
	}
}

func ApiResponseErrorHandler(
	status api.ApiResStatusEnum,
	errorMessage string,
	errorDetails string,
) *ErrorHandler {
	return &ErrorHandler{
		Handler: func(w http.ResponseWriter) {
			WriteApiResponseError(w, status, errorMessage, errorDetails)
		},
	}
}
