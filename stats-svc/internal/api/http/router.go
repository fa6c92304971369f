package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"local-business-dashboard/middleware"
)

const serviceName = "stats-svc"

func NewRouter(handler *Handler, log *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(serviceName, log))
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
