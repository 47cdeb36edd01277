package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"account-manager-api/internal/application/ports"
	domain "account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	"account-manager-api/internal/domain/user"
)

const maxBaseNameLen = 100

var (
	windowsReserved = map[string]struct{}{
		"con": {}, "prn": {}, "aux": {}, "nul": {},
		"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
		"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
	}
	fileSafeRe    = regexp.MustCompile(`[^A-Za-z0-9\.\_\- ]+`)
	leadingDotsRe = regexp.MustCompile(`^\.+`)
)

type FileService struct {
	store          ports.ObjectStore
	fileRepository domain.Repository
	userRepository user.Repository
	mCounter       *prometheus.CounterVec
}

func NewFileService(
	store ports.ObjectStore,
	fileRepository domain.Repository,
	userRepository user.Repository,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		store:          store,
		fileRepository: fileRepository,
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (fs *FileService) ListByOwner(ctx context.Context, ot domain.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*domain.File], error) {
	if err := fs.checkOwner(ctx, ot, oid); err != nil {
		return nil, err
	}

	return fs.fileRepository.ByOwner(ctx, ot, oid, p, pg)
}

// Attach stores the upload and records its metadata, replacing any
// current file for the same (owner type, owner id, file type) tuple.
// The prior record is deleted before its object, and the new object is
// written before the new record: a crash in between can orphan a file
// on disk but never leaves a record serving a missing object.
func (fs *FileService) Attach(ctx context.Context, ot domain.OwnerType, oid uuid.UUID, ft domain.Type, in *multipart.FileHeader) (*domain.File, error) {
	if err := fs.checkOwner(ctx, ot, oid); err != nil {
		return nil, err
	}

	cur, err := fs.fileRepository.Current(ctx, ot, oid, ft)
	switch {
	case err == nil:
		if _, err = fs.fileRepository.Delete(ctx, cur.ID); err != nil {
			return nil, err
		}
		if err = fs.store.Delete(ctx, cur.StoragePath); err != nil {
			return nil, err
		}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	f := fs.fillMetaData(in, ot, oid, ft)

	src, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if err = fs.store.Save(ctx, f.StoragePath, src); err != nil {
		return nil, err
	}

	out, err := fs.fileRepository.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	fs.mCounter.WithLabelValues("files_created_total").Inc()

	return out, nil
}

// Remove deletes the metadata record, then the backing object.
func (fs *FileService) Remove(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	f, err := fs.fileRepository.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = fs.store.Delete(ctx, f.StoragePath); err != nil {
		return nil, err
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return f, nil
}

func (fs *FileService) checkOwner(ctx context.Context, ot domain.OwnerType, oid uuid.UUID) error {
	if ot != domain.OwnerUser {
		return fmt.Errorf("unsupported owner type %q", ot)
	}
	_, err := fs.userRepository.ByID(ctx, oid)

	return err
}

func (fs *FileService) fillMetaData(in *multipart.FileHeader, ot domain.OwnerType, oid uuid.UUID, ft domain.Type) *domain.File {
	name := sanitizeFileName(in.Filename)
	key := storageKey(ot, oid, ft, name, in.Header.Get("Content-Type"))

	return &domain.File{
		ID:          uuid.New(),
		Label:       name,
		StoragePath: key,
		DownloadURL: fs.store.PublicURL(key),
		FileType:    ft,
		OwnerType:   ot,
		OwnerID:     oid,
		MimeType:    in.Header.Get("Content-Type"),
		SizeBytes:   in.Size,
	}
}

// storageKey: "<ownertype>/<ownerid>/<filetype>/<ts-nanosec>-<filename>.ext"
func storageKey(ot domain.OwnerType, oid uuid.UUID, ft domain.Type, name, mimeType string) string {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, ext)

	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	return fmt.Sprintf("%s/%s/%s/%d-%s%s",
		strings.ToLower(string(ot)),
		oid,
		strings.ToLower(string(ft)),
		time.Now().UnixNano(),
		base,
		ext,
	)
}

// sanitizeFileName strips diacritics, control characters and anything
// outside a conservative charset, and dodges Windows reserved names.
func sanitizeFileName(name string) string {
	s := strings.TrimSpace(filepath.Base(name))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.Map(func(r rune) rune {
		if r == '\x00' || r < 0x20 {
			return -1
		}
		return r
	}, s)
	s = fileSafeRe.ReplaceAllString(s, "_")
	s = leadingDotsRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "_")

	ext := strings.ToLower(filepath.Ext(s))
	base := strings.TrimSuffix(s, ext)
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}
	if _, reserved := windowsReserved[strings.ToLower(base)]; reserved || base == "" {
		base = "file"
	}

	return base + ext
}
