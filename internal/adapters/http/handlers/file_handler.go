package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

const (
	// uploadField is the multipart field that carries the files.
	uploadField = "files"

	// uploadMemory is how much of a multipart body is held in memory before
	// parts spill to temporary files.
	uploadMemory = 8 << 20
)

// FileHandler handles attachment uploads and downloads.
type FileHandler struct {
	svc             ports.FileService
	maxUploadBytes  int64
	downloadTimeout time.Duration
}

// NewFileHandler creates a FileHandler. maxUploadBytes caps a whole upload
// request; downloadTimeout bounds streaming a single file.
func NewFileHandler(svc ports.FileService, maxUploadBytes int64, downloadTimeout time.Duration) *FileHandler {
	return &FileHandler{svc: svc, maxUploadBytes: maxUploadBytes, downloadTimeout: downloadTimeout}
}

// Upload returns the handler for POST .../{id}/files on an owner of kind.
// Every part of the "files" field is attached in one transaction.
func (h *FileHandler) Upload(kind project.OwnerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if fail(w, r, err) {
			return
		}

		uploads, cleanup, err := h.readUploads(w, r)
		defer cleanup()
		if fail(w, r, err) {
			return
		}

		files, err := h.svc.Upload(r.Context(), project.FileOwner{Kind: kind, ID: id}, uploads)
		if fail(w, r, err) {
			return
		}

		writeJSON(w, http.StatusCreated, dto.ToFileResponses(files))
	}
}

// readUploads parses the multipart body and opens every uploaded part. The
// returned cleanup closes the parts and removes spilled temporary files; it
// is safe to call on error.
func (h *FileHandler) readUploads(w http.ResponseWriter, r *http.Request) ([]ports.FileUpload, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			_ = f.Close()
		}
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(uploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, cleanup, &domain.ValidationError{
				Fields: map[string]string{"body": fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)},
			}
		}
		return nil, cleanup, &domain.ValidationError{
			Fields: map[string]string{"body": "must be multipart/form-data"},
		}
	}

	headers := r.MultipartForm.File[uploadField]
	uploads := make([]ports.FileUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, cleanup, fmt.Errorf("opening upload %q: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		uploads = append(uploads, ports.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, cleanup, nil
}

// Download handles GET /api/v1/files/{id} by streaming the stored object.
// The route sits outside the Timeout middleware so large objects are not cut
// off by the API deadline; downloadTimeout bounds it instead.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if fail(w, r, err) {
		return
	}

	ctx := r.Context()
	if h.downloadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.downloadTimeout)
		defer cancel()

		rc := http.NewResponseController(w)
		if err := rc.SetWriteDeadline(time.Now().Add(h.downloadTimeout)); err != nil && !errors.Is(err, http.ErrNotSupported) {
			logging.FromContext(ctx).WarnContext(ctx, "failed to extend write deadline",
				slog.Any("error", err),
			)
		}
	}

	dl, err := h.svc.Download(ctx, id)
	if fail(w, r, err) {
		return
	}
	defer func() { _ = dl.Body.Close() }()

	w.Header().Set("Content-Type", dl.File.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(dl.File.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": dl.File.Filename.String(),
	}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, dl.Body); err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "file download interrupted",
			slog.String("operation", "Download"),
			slog.String("file_id", id.String()),
			slog.Any("error", err),
		)
	}
}
