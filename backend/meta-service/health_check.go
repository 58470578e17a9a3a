package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const (
	appName        = "meta-service"
	defaultPort    = "8082"
	defaultTargets = "http://localhost:8081/health,http://localhost:8080/health"
	checkTimeout   = 2 * time.Second
)

type serviceHealth struct {
	URL     string `json:"url"`
	Healthy bool   `json:"healthy"`
}

type healthResponse struct {
	Status   string          `json:"status"`
	Services []serviceHealth `json:"services"`
}

// healthChecker reports healthy only when every target answers 200.
type healthChecker struct {
	client  *http.Client
	targets []string
}

func main() {
	utils.InitLogger(appName)
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file loaded; using process environment")
	}

	checker := &healthChecker{
		client:  &http.Client{Timeout: checkTimeout},
		targets: parseTargets(utils.GetEnv("HEALTH_TARGETS", defaultTargets)),
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", checker.healthHandler).Methods("GET")

	port := utils.GetEnv("APP_PORT", defaultPort)
	utils.Logger.Infof("Starting %s on port %s, checking %v", appName, port, checker.targets)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}

func parseTargets(raw string) []string {
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (c *healthChecker) checkAll(ctx context.Context) []serviceHealth {
	results := make([]serviceHealth, len(c.targets))
	var g errgroup.Group
	for i, target := range c.targets {
		g.Go(func() error {
			results[i] = serviceHealth{URL: target, Healthy: c.check(ctx, target)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (c *healthChecker) check(ctx context.Context, target string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Invalid health target %s", target)
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Service unhealthy: %s", target)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		utils.Logger.Warnf("Service unhealthy: %s (status %d)", target, resp.StatusCode)
		return false
	}
	return true
}

func (c *healthChecker) healthHandler(w http.ResponseWriter, r *http.Request) {
	services := c.checkAll(r.Context())

	resp := healthResponse{Status: "OK", Services: services}
	status := http.StatusOK
	for _, s := range services {
		if !s.Healthy {
			resp.Status = "Unhealthy"
			status = http.StatusServiceUnavailable
			break
		}
	}
	utils.RespondWithJSON(w, status, resp)
}
