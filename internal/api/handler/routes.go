package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opsvue/performance-coach-api/internal/api/handler/router"
	"github.com/opsvue/performance-coach-api/internal/usecases/authenticating"
	"github.com/opsvue/performance-coach-api/internal/usecases/coaching"
	"github.com/opsvue/performance-coach-api/internal/usecases/insighting"
	"github.com/opsvue/performance-coach-api/pkg/metrics"
	"github.com/opsvue/performance-coach-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics exposes the Prometheus registry. The auth middleware keeps this
// path public so scrapers do not need a token.
func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}),
		},
	}
}

func Overview(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/overview/history",
			Method:      http.MethodGet,
			Handler:     GetOverviewHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Colleagues(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/colleagues",
			Method:      http.MethodGet,
			Handler:     ListColleagues(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/colleagues/:id",
			Method:      http.MethodGet,
			Handler:     GetColleague(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/colleagues/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetColleagueMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/colleagues/:id/scorecard.pdf",
			Method:      http.MethodGet,
			Handler:     GetColleagueScorecardPDF(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/struggling",
			Method:      http.MethodGet,
			Handler:     GetStruggling(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Trends(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/trends",
			Method:      http.MethodGet,
			Handler:     GetTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/trends/movers",
			Method:      http.MethodGet,
			Handler:     GetMovers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Benchmarks(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/benchmarks",
			Method:      http.MethodGet,
			Handler:     GetBenchmarks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// TrainingGuide serves the static manager training content. Every
// authenticated role can read it.
func TrainingGuide() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/guide",
			Method:      http.MethodGet,
			Handler:     GetCoachingGuide(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/metrics/definitions",
			Method:      http.MethodGet,
			Handler:     GetMetricDefinitions(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dataset(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Coaching(service coaching.Coach) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/coaching/colleagues/:id/summary",
			Method:      http.MethodPost,
			Handler:     GenerateColleagueSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/coaching/colleagues/:id/analysis",
			Method:      http.MethodPost,
			Handler:     GenerateStrugglingAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/coaching/colleagues/:id/plan",
			Method:      http.MethodPost,
			Handler:     GenerateCoachingPlan(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/coaching/team",
			Method:      http.MethodPost,
			Handler:     GenerateTeamAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CoachChat(service coaching.Coach) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/coach/chat",
			Method:      http.MethodPost,
			Handler:     PostCoachChat(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/coach/chat/:session_id",
			Method:      http.MethodGet,
			Handler:     GetCoachChat(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/coach/chat/:session_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCoachChat(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
