package handlers

import "net/http"

// HandleHealth reports service and database liveness from a fresh probe.
func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := s.requestContext(r)
		defer cancel()

		status := "healthy"
		database := "connected"
		if err := s.DB.Ping(ctx); err != nil {
			status = "unhealthy"
			database = "disconnected"
			s.Log.Warn("health probe failed", "err", err)
		}

		s.writeJSON(w, map[string]string{
			"status":   status,
			"database": database,
		})
	}
}
