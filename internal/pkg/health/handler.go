package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/logger"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Checker probes one dependency
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// Ping calls f
func (f CheckerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Response is the body of GET /health
type Response struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Timestamp    time.Time         `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Service aggregates dependency checks
type Service struct {
	name     string
	checkers map[string]Checker
}

// NewService creates a health service for serviceName
func NewService(serviceName string) *Service {
	return &Service{name: serviceName, checkers: make(map[string]Checker)}
}

// AddChecker registers a dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs every registered checker
func (s *Service) Check(ctx context.Context) Response {
	resp := Response{
		Status:       "healthy",
		Service:      s.name,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]string, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].Ping(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			resp.Dependencies[name] = "unhealthy: " + err.Error()
			resp.Status = "unhealthy"
			continue
		}
		resp.Dependencies[name] = "healthy"
	}
	return resp
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers /ping and /health
func RegisterHealthEndpoints(e *echo.Echo, svc *Service) {
	e.GET("/ping", NewPingHandler(svc.name))

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := svc.Check(ctx)
		if resp.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
}
