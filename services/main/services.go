package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/ava-explorer/logger"
	"github.com/ava-labs/ava-explorer/services/context"
	"github.com/ava-labs/ava-explorer/services/routes"
	"github.com/ava-labs/ava-explorer/services/utils"

	"github.com/gorilla/mux"
)

func main() {
	ctx, err := context.BuildContext()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	utils.InitMetricsServer(&ctx.Config().Metrics)

	muxRouter := mux.NewRouter()
	muxRouter.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)

	router := utils.NewSwaggerRouter(muxRouter, "Explorer transactions API", "0.1.0")
	routes.AddTransactionRoutes(router, ctx)
	routes.AddStakingRoutes(router, ctx)
	routes.AddNftRoutes(router, ctx)

	router.Finalize()

	address := ctx.Config().Services.Address
	srv := &http.Server{
		Handler: muxRouter,
		Addr:    address,
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server on %s", address)
		err := srv.ListenAndServe()
		if err != nil {
			logger.Error("Server error: %v", err)
		}
	}()

	<-cancelChan
	logger.Info("Shutting down server")
}
