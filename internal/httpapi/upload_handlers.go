package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

// handleUploadImage stores a multipart image under the uploads directory and
// returns the URL it will be served from.
func (a *API) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if a.uploadDir == "" {
		writeError(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	// Random prefix keeps uploads collision-free; Base strips any path
	// segments a client smuggles into the filename.
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + filepath.Base(header.Filename)

	if err := os.MkdirAll(a.uploadDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, "Could not store upload")
		return
	}
	dst, err := os.Create(filepath.Join(a.uploadDir, name))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not store upload")
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, http.StatusInternalServerError, "Could not store upload")
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"image_url": scheme + "://" + r.Host + "/uploads/" + name,
	})
}
