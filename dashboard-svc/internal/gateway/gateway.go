package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"local-business-dashboard/middleware"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RouteRegistrar is anything that mounts its own routes, such as the
// dashboard pages.
type RouteRegistrar interface {
	RegisterRoutes(r *mux.Router)
}

type Config struct {
	BusinessSvcURL string
	StatsSvcURL    string
}

// Gateway forwards the asset and statistics routes the dashboard page
// links to, so the browser only talks to the dashboard origin.
type Gateway struct {
	config Config
	client HTTPClient
	log    *zap.Logger
}

func NewGateway(config Config, client HTTPClient, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		config: config,
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "dashboard-svc",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}
	g.log.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", url))

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.log.Error("failed to create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error("proxy failed", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.log.Warn("failed to copy proxy response", zap.Error(err))
	}
}

func (g *Gateway) ReviewQRCode(w http.ResponseWriter, r *http.Request) {
	g.ProxyRequest(w, r, g.config.BusinessSvcURL)
}

func (g *Gateway) UsageStats(w http.ResponseWriter, r *http.Request) {
	if g.config.StatsSvcURL == "" {
		http.Error(w, "stats service not configured", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, g.config.StatsSvcURL)
}

func (g *Gateway) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/review-qrcode", g.ReviewQRCode).Methods("GET")
	r.HandleFunc("/api/stats", g.UsageStats).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

func (g *Gateway) SetupRoutes(pages RouteRegistrar) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging("dashboard-svc", g.log))
	g.RegisterRoutes(r)
	pages.RegisterRoutes(r)
	return r
}
