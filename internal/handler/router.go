package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/service"
	"go.uber.org/zap"
)

var (
	corsAllowMethods = []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsAllowHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization}
)

// RouterConfig holds the dependencies of the HTTP API
type RouterConfig struct {
	Logger     *zap.Logger
	Questions  *service.QuestionService
	Categories *service.CategoryService
	Quizzes    *service.QuizService

	// DB is pinged by the health check. Optional.
	DB Pinger

	// Limiter enables per-client rate limiting. Optional.
	Limiter *ratelimit.Limiter
}

// NewRouter builds the echo instance serving the trivia API
func NewRouter(cfg RouterConfig) *echo.Echo {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(log)

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(corsHeaders)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: corsAllowMethods,
		AllowHeaders: corsAllowHeaders,
	}))
	if cfg.Limiter != nil {
		e.Use(ratelimit.Middleware(cfg.Limiter, log))
	}

	questionHandler := NewQuestionHandler(cfg.Questions)
	categoryHandler := NewCategoryHandler(cfg.Categories, cfg.Questions)
	quizHandler := NewQuizHandler(cfg.Quizzes)

	// Category routes
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id/questions", categoryHandler.Questions)

	// Question routes
	e.GET("/questions", questionHandler.List)
	e.POST("/questions", questionHandler.Create)
	e.POST("/questions/search", questionHandler.Search)
	e.DELETE("/questions/:id", questionHandler.Delete)

	// Quiz routes
	e.POST("/quizzes", quizHandler.Play)

	// Health check endpoint
	e.GET("/health", Health(cfg.DB))

	return e
}

// corsHeaders adds the permissive CORS headers to every response, including errors
func corsHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowOrigin, "*")
		h.Set(echo.HeaderAccessControlAllowHeaders, strings.Join(corsAllowHeaders, ","))
		h.Set(echo.HeaderAccessControlAllowMethods, strings.Join(corsAllowMethods, ","))
		return next(c)
	}
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
