package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/project-service/internal/app/context"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// maxKeyAttempts bounds the suffix search for a free object key.
const maxKeyAttempts = 1000

// Compile-time check that FileService implements ports.FileService.
var _ ports.FileService = (*FileService)(nil)

// FileService stores file contents in the object store and their metadata
// in the owning aggregate.
type FileService struct {
	store   Storage
	objects ports.ObjectStore
	logger  *slog.Logger
	opts    options
}

// NewFileService creates a FileService. A nil logger discards output.
func NewFileService(store Storage, objects ports.ObjectStore, logger *slog.Logger, opts ...Option) *FileService {
	return &FileService{
		store:   store,
		objects: objects,
		logger:  loggerOrDiscard(logger),
		opts:    newOptions(opts),
	}
}

// Upload stores every file under a unique key, then attaches the metadata
// in one transaction. If the attach fails the uploaded objects are deleted.
func (s *FileService) Upload(ctx context.Context, owner project.FileOwner, files []ports.FileUpload) ([]project.FileAttachment, error) {
	s.logger.InfoContext(ctx, "uploading files",
		slog.String("owner_kind", string(owner.Kind)),
		slog.String("owner_id", owner.ID.String()),
		slog.Int("count", len(files)),
	)

	if !owner.Kind.IsValid() {
		return nil, &domain.ValidationError{Fields: map[string]string{"owner": "unknown owner kind"}}
	}
	if len(files) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"files": "at least one file is required"}}
	}
	for _, f := range files {
		if _, err := project.NewFileName(f.Filename); err != nil {
			return nil, err
		}
	}

	// Resolve the owner before touching storage so a missing owner
	// never leaves orphaned objects behind.
	if _, err := s.loadOwner(ctx, s.store.Projects, owner); err != nil {
		return nil, err
	}

	attachments, candidates, batch, err := s.prepare(ctx, basePath(owner), files)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to allocate object keys",
			slog.String("operation", "Upload"),
			slog.String("owner_id", owner.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	rc := appctx.New(ctx)
	uploaded := appctx.NewRef(int64(0))

	puts := make([]domain.Action, len(files))
	for i, f := range files {
		puts[i] = &putObjectAction{
			svc:        s,
			file:       &attachments[i],
			candidates: candidates[i],
			batch:      batch,
			body:       f.Body,
			uploaded:   uploaded,
		}
	}
	if err := rc.AddGroup(puts...); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&attachAction{svc: s, owner: owner, files: attachments}); err != nil {
		return nil, err
	}

	if err := rc.Commit(logging.Ensure(ctx, s.logger)); err != nil {
		s.logger.ErrorContext(ctx, "failed to upload files",
			slog.String("operation", "Upload"),
			slog.String("owner_kind", string(owner.Kind)),
			slog.String("owner_id", owner.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if s.opts.metrics != nil {
		s.opts.metrics.FilesUploadedBytes.Add(ctx, uploaded.Get(),
			metric.WithAttributes(telemetry.AttrOwnerKind.String(string(owner.Kind))))
	}
	return attachments, nil
}

// prepare allocates a first key for every file and builds its metadata.
// Keys chosen earlier in the same batch count as taken. A key can still be
// lost to a concurrent upload; the put step then moves on to the next one.
func (s *FileService) prepare(ctx context.Context, base string, files []ports.FileUpload) ([]project.FileAttachment, []*keyCandidates, *batchKeys, error) {
	batch := &batchKeys{taken: make(map[string]struct{}, len(files))}
	attachments := make([]project.FileAttachment, len(files))
	candidates := make([]*keyCandidates, len(files))

	for i, f := range files {
		candidates[i] = newKeyCandidates(base, strings.TrimSpace(f.Filename))
		key, err := s.nextFreeKey(ctx, candidates[i], batch)
		if err != nil {
			return nil, nil, nil, err
		}

		attachments[i], err = project.NewFileAttachment(f.Filename, f.ContentType, f.Size, key, s.opts.clock)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return attachments, candidates, batch, nil
}

// nextFreeKey returns the next candidate that this batch has not claimed and
// the object store does not hold.
func (s *FileService) nextFreeKey(ctx context.Context, c *keyCandidates, batch *batchKeys) (string, error) {
	for {
		key, ok := c.next()
		if !ok {
			return "", domain.NewDomainError(domain.ErrConflict, "no free object key for %q under %s", c.filename(), c.base)
		}
		if !batch.claim(key) {
			continue
		}

		exists, err := s.objects.Exists(ctx, key)
		if err != nil {
			return "", fmt.Errorf("checking object key %q: %w", key, err)
		}
		if !exists {
			return key, nil
		}
	}
}

// keyCandidates yields {base}/{stem}{_n}{ext}: the bare name first, then
// n = 1, 2, ... up to maxKeyAttempts keys in total.
type keyCandidates struct {
	base, stem, ext string
	n               int
}

func newKeyCandidates(base, filename string) *keyCandidates {
	ext := path.Ext(filename)
	return &keyCandidates{base: base, stem: strings.TrimSuffix(filename, ext), ext: ext}
}

func (c *keyCandidates) filename() string { return c.stem + c.ext }

func (c *keyCandidates) next() (string, bool) {
	if c.n >= maxKeyAttempts {
		return "", false
	}
	suffix := ""
	if c.n > 0 {
		suffix = "_" + strconv.Itoa(c.n)
	}
	c.n++
	return c.base + "/" + c.stem + suffix + c.ext, true
}

// batchKeys is the set of keys claimed by one upload. Puts in a group run
// concurrently and claim through it.
type batchKeys struct {
	mu    sync.Mutex
	taken map[string]struct{}
}

// claim reports whether key was free in the batch and marks it taken.
func (b *batchKeys) claim(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.taken[key]; ok {
		return false
	}
	b.taken[key] = struct{}{}
	return true
}

// Download opens a stored file for streaming.
func (s *FileService) Download(ctx context.Context, fileID uuid.UUID) (*ports.Download, error) {
	file, _, err := s.store.Projects.FindFile(ctx, fileID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find file",
			slog.String("operation", "Download"),
			slog.String("file_id", fileID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	obj, err := s.objects.Get(ctx, file.Path)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to open stored file",
			slog.String("operation", "Download"),
			slog.String("file_id", fileID.String()),
			slog.String("path", file.Path),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &ports.Download{File: file, Body: obj.Body}, nil
}

func (s *FileService) loadOwner(ctx context.Context, repo ports.ProjectRepository, owner project.FileOwner) (*project.Project, error) {
	switch owner.Kind {
	case project.OwnerProject:
		return repo.Get(ctx, owner.ID)
	case project.OwnerSubproject:
		return repo.GetBySubproject(ctx, owner.ID)
	default:
		return repo.GetByStage(ctx, owner.ID)
	}
}

func basePath(owner project.FileOwner) string {
	switch owner.Kind {
	case project.OwnerProject:
		return "projects/" + owner.ID.String()
	case project.OwnerSubproject:
		return "subprojects/" + owner.ID.String()
	default:
		return "stages/" + owner.ID.String()
	}
}

// putObjectAction uploads one object without replacing an existing one. When
// the store reports the key taken it advances to the next free candidate,
// rewinds the body and retries, updating the attachment's Path.
type putObjectAction struct {
	svc        *FileService
	file       *project.FileAttachment
	candidates *keyCandidates
	batch      *batchKeys
	body       io.Reader
	uploaded   *appctx.SafeRef[int64]
}

func (a *putObjectAction) Execute(ctx context.Context) error {
	for {
		err := a.svc.objects.Put(ctx, a.file.Path, a.body, a.file.Size, a.file.ContentType)
		if err == nil {
			a.uploaded.Update(func(total *int64) { *total += a.file.Size })
			return nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("storing %s: %w", a.file.Path, err)
		}

		seeker, ok := a.body.(io.Seeker)
		if !ok {
			return fmt.Errorf("storing %s: body cannot be replayed: %w", a.file.Path, err)
		}
		if _, serr := seeker.Seek(0, io.SeekStart); serr != nil {
			return fmt.Errorf("rewinding body for %s: %w", a.file.Path, serr)
		}
		key, kerr := a.svc.nextFreeKey(ctx, a.candidates, a.batch)
		if kerr != nil {
			return kerr
		}
		a.file.Path = key
	}
}

// Rollback deletes only the object this action created.
func (a *putObjectAction) Rollback(ctx context.Context) error {
	return a.svc.objects.Delete(context.WithoutCancel(ctx), a.file.Path)
}

func (a *putObjectAction) Description() string { return "put object " + a.file.Path }

// attachAction records file metadata on the owner in one transaction.
// It is the last step, so it has nothing to undo.
type attachAction struct {
	svc   *FileService
	owner project.FileOwner
	files []project.FileAttachment
}

func (a *attachAction) Execute(ctx context.Context) error {
	return a.svc.store.UnitOfWork.Do(ctx, func(ctx context.Context, tx ports.Tx) error {
		p, err := a.svc.loadOwner(ctx, tx.Projects(), a.owner)
		if err != nil {
			return err
		}
		if err := p.Attach(a.owner, a.files...); err != nil {
			return err
		}
		return tx.Projects().Save(ctx, p)
	})
}

func (a *attachAction) Rollback(context.Context) error { return nil }

func (a *attachAction) Description() string {
	return fmt.Sprintf("attach %d file(s) to %s %s", len(a.files), a.owner.Kind, a.owner.ID)
}
