package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/mahawer/mahawer-api/internal/config"
	"github.com/mahawer/mahawer-api/internal/errors"
	"github.com/mahawer/mahawer-api/internal/storage"
	"github.com/mahawer/mahawer-api/internal/utils/response"
	"github.com/google/uuid"
)

// allowedImageTypes maps sniffed MIME types to the stored file extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type UploadHandler struct {
	store storage.Storage
	cfg   config.Upload
}

func NewUploadHandler(store storage.Storage, cfg config.Upload) *UploadHandler {
	return &UploadHandler{store: store, cfg: cfg}
}

// Upload accepts one multipart image under the "file" field. The MIME type is
// sniffed from the content, not taken from the client.
func (h *UploadHandler) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBytes)

		if err := r.ParseMultipartForm(h.cfg.MaxBytes); err != nil {
			response.Error(w, errors.BadRequestError("File too large or invalid multipart body").
				WithDetail(fmt.Sprintf("maximum upload size is %d bytes", h.cfg.MaxBytes)).WithError(err))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			response.Error(w, errors.BadRequestError("Missing file field").WithError(err))
			return
		}

		defer file.Close()

		head := make([]byte, 512)

		n, err := file.Read(head)
		if err != nil && err != io.EOF {
			response.Error(w, errors.InternalError("Failed to read uploaded file").WithError(err))
			return
		}

		contentType := http.DetectContentType(head[:n])

		ext, ok := allowedImageTypes[contentType]
		if !ok {
			response.Error(w, errors.BadRequestError("Unsupported file type").
				WithDetail("only JPEG, PNG, WebP and GIF images are accepted"))
			return
		}

		name := path.Join(time.Now().Format("2006/01"), uuid.NewString()+ext)

		if _, err := file.Seek(0, io.SeekStart); err != nil {
			response.Error(w, errors.InternalError("Failed to read uploaded file").WithError(err))
			return
		}

		url, err := h.store.Put(name, file)
		if err != nil {
			slog.Error("Failed to store uploaded file", slog.String("name", name), slog.String("error", err.Error()))
			response.Error(w, errors.InternalError("Failed to store uploaded file").WithError(err))
			return
		}

		slog.Info("File uploaded", slog.String("name", name), slog.String("contentType", contentType), slog.Int64("size", header.Size))
		response.Success(w, http.StatusCreated, map[string]string{
			"url":      url,
			"fileName": path.Base(name),
		})

	}
}
