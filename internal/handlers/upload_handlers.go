package handlers

import (
	"net/http"
)

// maxUploadSize bounds in-memory multipart parsing.
const maxUploadSize = 32 << 20

// HandleUpload proxies a multipart file to the pinning provider and relays
// its response verbatim, provider errors included.
func (s *Server) HandleUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Pinner.Configured() {
			http.Error(w, "pinning provider credentials not configured", http.StatusInternalServerError)
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "Invalid multipart request", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ctx, cancel := s.requestContext(r)
		defer cancel()

		resp, err := s.Pinner.PinFile(ctx, header.Filename, file)
		if err != nil {
			s.writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", resp.ContentType)
		w.WriteHeader(resp.StatusCode)
		w.Write(resp.Body)
	}
}
