package routes

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/services"
)

const RequestIDHeader = "X-Request-ID"

// NewRouter wires every route behind the request logging middleware.
func NewRouter(social *services.Social, sessions *services.Sessions) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger)

	CreateUserRoutes(social, sessions, router)
	CreatePostRoutes(social, sessions, router)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags each request with an id and logs it once served.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logging.Log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start).String(),
		}).Info("request")
	})
}
