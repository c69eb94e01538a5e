package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/maham-hq/maham/pkg/service/i18n"
	"github.com/maham-hq/maham/pkg/usecase"
	"github.com/maham-hq/maham/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	i18nSvc *i18n.Service
}

type Options func(*Server)

// WithI18n enables the locale catalog endpoint
func WithI18n(svc *i18n.Service) Options {
	return func(s *Server) {
		s.i18nSvc = svc
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	if s.i18nSvc != nil {
		r.Use(localeMiddleware(s.i18nSvc))
	}

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/signup", signUpHandler(uc.Auth))
		r.Post("/auth/signin", signInHandler(uc.Auth))
		if s.i18nSvc != nil {
			r.Get("/i18n/{lang}", localeHandler(s.i18nSvc))
		}

		// Everything else requires a session
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(uc.Auth))

			r.Post("/auth/signout", signOutHandler(uc.Auth))
			r.Get("/auth/me", meHandler())

			r.Get("/dashboard/stats", dashboardStatsHandler(uc.Dashboard))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", listDepartmentsHandler(uc.Department))
				r.Post("/", createDepartmentHandler(uc.Department))
				r.Delete("/{id}", deleteDepartmentHandler(uc.Department))
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", listEmployeesHandler(uc.Employee))
				r.Post("/", createEmployeeHandler(uc.Employee))
				r.Put("/{id}", updateEmployeeHandler(uc.Employee))
				r.Delete("/{id}", deleteEmployeeHandler(uc.Employee))
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", listTasksHandler(uc.Task))
				r.Post("/", createTaskHandler(uc.Task))
				r.Put("/{id}", updateTaskHandler(uc.Task))
				r.Delete("/{id}", deleteTaskHandler(uc.Task))
				r.Post("/{id}/transition", transitionTaskHandler(uc.Task))
				r.Get("/{id}/actions", taskActionsHandler(uc.Task))
				r.Get("/{id}/files", listTaskFilesHandler(uc.File))
			})

			r.Route("/files", func(r chi.Router) {
				r.Get("/", listFilesHandler(uc.File))
				r.Post("/", uploadFileHandler(uc.File))
				r.Get("/{id}/download", downloadFileHandler(uc.File))
				r.Delete("/{id}", deleteFileHandler(uc.File))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
