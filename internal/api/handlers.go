package api

import (
	"encoding/json"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/baluflix/baluflix/internal/auth"
	"github.com/baluflix/baluflix/internal/catalog"
	"github.com/baluflix/baluflix/internal/stream"
	"github.com/go-chi/chi/v5"
)

type App struct {
	Catalog       *catalog.Service
	Gate          *auth.Gate
	Streamer      *stream.Streamer
	MaxUploadSize int64
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func (app *App) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body")
		return
	}

	token, err := app.Gate.Login(body.Username, body.Password)
	if err != nil {
		unauthorized(w, "invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (app *App) ListVideosHandler(w http.ResponseWriter, r *http.Request) {
	videos, err := app.Catalog.ListPublished(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (app *App) ListAllVideosHandler(w http.ResponseWriter, r *http.Request) {
	videos, err := app.Catalog.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

func (app *App) CreateVideoHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
		URL   string `json:"url"`
		Kind  string `json:"type"`
		Thumb string `json:"thumb"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body")
		return
	}

	video, err := app.Catalog.CreateFromReference(r.Context(), body.Title, body.URL, body.Kind, body.Thumb)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

func (app *App) UploadVideoHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, app.MaxUploadSize)

	if err := r.ParseMultipartForm(app.MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationError, "file too large")
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationError, "no file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") && contentType != "application/octet-stream" {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".mp4" {
			writeError(w, http.StatusBadRequest, codeValidationError, "only video files are allowed")
			return
		}
		contentType = "video/mp4"
	}

	video, err := app.Catalog.CreateFromUpload(r.Context(), catalog.UploadInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		File:        file,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}, auth.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}

func (app *App) PublishVideoHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusNotFound, codeNotFound, "missing video id")
		return
	}

	video, err := app.Catalog.Publish(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, video)
}

func (app *App) StreamVideoHandler(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" {
		http.NotFound(w, r)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "video/mp4"
	}

	app.Streamer.Serve(w, r, filename, contentType)
}
