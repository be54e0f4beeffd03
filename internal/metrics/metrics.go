package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scratch"

var (
	// Registry коллекторы приложения
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	plays = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "plays_total",
			Help:      "Tickets revealed, by class and outcome.",
		},
		[]string{"class", "outcome"},
	)

	tokensAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "tokens_awarded_total",
			Help:      "Tokens credited to claimable balances by plays.",
		},
		[]string{"class"},
	)

	specialPrizes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "special_prizes_total",
			Help:      "Special prizes won.",
		},
		[]string{"class"},
	)

	overrideConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "override_consumed_total",
			Help:      "Admin overrides consumed by premium draws.",
		},
	)

	pityGrants = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "game",
			Name:      "pity_grants_total",
			Help:      "Guaranteed prizes granted after a loss streak.",
		},
	)

	settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "attempts_total",
			Help:      "Settlement attempts by result.",
		},
		[]string{"result"},
	)

	settlementDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "settlement",
			Name:      "duration_seconds",
			Help:      "Time the settlement lock was held.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
	)

	fulfillmentClaims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fulfillment",
			Name:      "claims_total",
			Help:      "Special prize fulfillment requests accepted.",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		plays,
		tokensAwarded,
		specialPrizes,
		overrideConsumed,
		pityGrants,
		settlements,
		settlementDuration,
		fulfillmentClaims,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler отдает метрики в формате prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler считает запросы и их длительность по шаблону маршрута chi
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordPlay учитывает вскрытый билет
func RecordPlay(class string, win bool, tokens int64, special int) {
	outcome := "loss"
	if win {
		outcome = "win"
	}
	plays.WithLabelValues(class, outcome).Inc()
	if tokens > 0 {
		tokensAwarded.WithLabelValues(class).Add(float64(tokens))
	}
	if special > 0 {
		specialPrizes.WithLabelValues(class).Add(float64(special))
	}
}

func RecordOverrideConsumed() {
	overrideConsumed.Inc()
}

func RecordPityGrant() {
	pityGrants.Inc()
}

// RecordSettlement result: confirmed, pending, rejected, busy, nothing, unconfigured
func RecordSettlement(result string, held time.Duration) {
	settlements.WithLabelValues(result).Inc()
	if held > 0 {
		settlementDuration.Observe(held.Seconds())
	}
}

func RecordFulfillment(kind string) {
	fulfillmentClaims.WithLabelValues(kind).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
