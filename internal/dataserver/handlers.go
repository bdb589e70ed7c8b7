package dataserver

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alexanderramin/cursada/internal/catalog"
	"github.com/gorilla/mux"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	cacheControl    = "public, max-age=0, must-revalidate"
)

func (s *Server) serveDataFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	term, file := vars["term"], vars["file"]

	if !catalog.IsDataFile(file) || catalog.ValidateTerm(term) != nil {
		notFound(w, r)
		return
	}

	path := filepath.Join(s.root, term, file)
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("opening data file", "path", path, "error", err)
		}
		notFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		notFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", cacheControl)
	// ServeContent handles HEAD and conditional requests.
	http.ServeContent(w, r, file, info.ModTime(), f)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not found"))
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}
