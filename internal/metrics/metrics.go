package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/quiz"
)

const namespace = "lymphiz"

// Collector holds the quiz and HTTP metrics. It satisfies session.Recorder.
type Collector struct {
	registry *prometheus.Registry

	questions    *prometheus.CounterVec
	failures     *prometheus.CounterVec
	answers      *prometheus.CounterVec
	achievements *prometheus.CounterVec
	sessions     prometheus.GaugeFunc

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector registers all metrics on a private registry. activeSessions
// may be nil.
func NewCollector(activeSessions func() int) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_generated_total",
			Help:      "Quiz instances generated, by mode.",
		}, []string{"mode"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Quiz instances that could not be generated, by mode.",
		}, []string{"mode"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_graded_total",
			Help:      "Graded submissions, by mode and result.",
		}, []string{"mode", "result"}),
		achievements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_unlocked_total",
			Help:      "Achievements unlocked, by id.",
		}, []string{"achievement"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "endpoint"}),
	}

	c.registry.MustRegister(c.questions, c.failures, c.answers, c.achievements, c.requests, c.duration)
	if activeSessions != nil {
		c.sessions = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}, func() float64 { return float64(activeSessions()) })
		c.registry.MustRegister(c.sessions)
	}
	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) QuestionGenerated(mode quiz.Mode) {
	c.questions.WithLabelValues(string(mode)).Inc()
}

func (c *Collector) GenerationFailed(mode quiz.Mode) {
	c.failures.WithLabelValues(string(mode)).Inc()
}

func (c *Collector) AnswerGraded(mode quiz.Mode, correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	c.answers.WithLabelValues(string(mode), result).Inc()
}

func (c *Collector) AchievementUnlocked(id achievements.ID) {
	c.achievements.WithLabelValues(string(id)).Inc()
}

// Middleware records request counts and latency per route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		c.requests.WithLabelValues(
			ctx.Request.Method,
			endpoint,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.duration.WithLabelValues(ctx.Request.Method, endpoint).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
