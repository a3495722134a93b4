// Package site serves the landing page and relays its contact form to the
// contact API for browsers that post the form directly.
package site

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"landing-site/internal/site/components"
	"landing-site/internal/site/form"
)

const maxFormBytes = 64 << 10

type Server struct {
	api    form.Submitter
	logger *slog.Logger
	now    func() time.Time
}

func NewServer(api form.Submitter, logger *slog.Logger) (*Server, error) {
	if api == nil {
		return nil, errors.New("site: contact api must not be nil")
	}
	if logger == nil {
		return nil, errors.New("site: logger must not be nil")
	}
	return &Server{api: api, logger: logger, now: time.Now}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.landingPage)
	r.Post("/contact", s.submitContact)
	r.Get("/health", s.health)
	return r
}

func (s *Server) landingPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, form.State{})
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		s.logger.InfoContext(r.Context(), "unreadable contact form", "err", err)
		s.render(w, r, http.StatusBadRequest, form.State{Feedback: form.FeedbackFailed})
		return
	}

	ctrl, err := form.NewController(s.api)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "contact form unavailable", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	ctrl.SetEmail(r.PostFormValue("email"))
	ctrl.SetMessage(r.PostFormValue("message"))

	st := ctrl.Submit(r.Context())
	s.logger.InfoContext(r.Context(), "contact form relayed",
		"success", st.Success,
		"feedback", st.Feedback,
		"request_id", middleware.GetReqID(r.Context()),
	)

	status := http.StatusOK
	if !st.Success {
		status = http.StatusUnprocessableEntity
	}
	s.render(w, r, status, st)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, st form.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := components.LandingPage(st, s.now().Year()).Render(w); err != nil {
		s.logger.ErrorContext(r.Context(), "render landing page", "err", err)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
