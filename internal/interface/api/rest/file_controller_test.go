package rest

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainFile "account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	domain "account-manager-api/internal/domain/user"
)

func newFileRouter(files *FakeFileService) (*gin.Engine, string) {
	r := testRouter()
	jwtService := testJWT()
	NewFileController(r, files, nopLogger(), jwtService)
	return r, userToken(jwtService)
}

func multipartUpload(t *testing.T, fileType, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("file_type", fileType))
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func someFile(ownerID uuid.UUID) *domainFile.File {
	return &domainFile.File{
		ID:          uuid.New(),
		Label:       "a.png",
		StoragePath: "user/" + ownerID.String() + "/avatar/1-a.png",
		DownloadURL: "http://files.test/user/" + ownerID.String() + "/avatar/1-a.png",
		FileType:    domainFile.TypeAvatar,
		OwnerType:   domainFile.OwnerUser,
		OwnerID:     ownerID,
		MimeType:    "image/png",
		SizeBytes:   128,
	}
}

func TestGetFilesHandler(t *testing.T) {
	ownerID := uuid.New()
	files := &FakeFileService{
		ListByOwnerFunc: func(ctx context.Context, ot domainFile.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*domainFile.File], error) {
			assert.Equal(t, domainFile.OwnerUser, ot)
			assert.Equal(t, ownerID, oid)
			return &query.Result[*domainFile.File]{
				Items:    []*domainFile.File{someFile(ownerID)},
				Total:    1,
				Page:     1,
				PageSize: 10,
			}, nil
		},
	}
	r, _ := newFileRouter(files)

	req := httptest.NewRequest(http.MethodGet, RouteUsers+"/"+ownerID.String()+"/files", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), "a.png")
}

func TestGetFilesHandler_UnknownOwner(t *testing.T) {
	files := &FakeFileService{
		ListByOwnerFunc: func(ctx context.Context, ot domainFile.OwnerType, oid uuid.UUID, p query.Params, pg query.Page) (*query.Result[*domainFile.File], error) {
			return nil, domain.ErrNotFound
		},
	}
	r, _ := newFileRouter(files)

	req := httptest.NewRequest(http.MethodGet, RouteUsers+"/"+uuid.NewString()+"/files", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestUploadFileHandler(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		var gotType domainFile.Type
		files := &FakeFileService{
			AttachFunc: func(ctx context.Context, ot domainFile.OwnerType, oid uuid.UUID, ft domainFile.Type, in *multipart.FileHeader) (*domainFile.File, error) {
				gotType = ft
				assert.Equal(t, "a.png", in.Filename)
				return someFile(oid), nil
			},
		}
		r, token := newFileRouter(files)

		body, contentType := multipartUpload(t, "AVATAR", "a.png", "png-bytes")
		req := httptest.NewRequest(http.MethodPost, RouteUsers+"/"+ownerID.String()+"/files", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, domainFile.TypeAvatar, gotType)
		assert.Contains(t, w.Body.String(), "download_url")
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		r, _ := newFileRouter(&FakeFileService{})

		body, contentType := multipartUpload(t, "AVATAR", "a.png", "png-bytes")
		req := httptest.NewRequest(http.MethodPost, RouteUsers+"/"+ownerID.String()+"/files", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad file type", func(t *testing.T) {
		r, token := newFileRouter(&FakeFileService{})

		body, contentType := multipartUpload(t, "SELFIE", "a.png", "png-bytes")
		req := httptest.NewRequest(http.MethodPost, RouteUsers+"/"+ownerID.String()+"/files", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "file_type")
	})

	t.Run("missing file part", func(t *testing.T) {
		r, token := newFileRouter(&FakeFileService{})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("file_type", "AVATAR"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, RouteUsers+"/"+ownerID.String()+"/files", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing file")
	})

	t.Run("oversized upload", func(t *testing.T) {
		r, token := newFileRouter(&FakeFileService{})

		body, contentType := multipartUpload(t, "AVATAR", "big.bin", strings.Repeat("x", int(maxUploadSize)+1))
		req := httptest.NewRequest(http.MethodPost, RouteUsers+"/"+ownerID.String()+"/files", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestDeleteFileHandler(t *testing.T) {
	ownerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := someFile(ownerID)
		files := &FakeFileService{
			RemoveFunc: func(ctx context.Context, id uuid.UUID) (*domainFile.File, error) {
				assert.Equal(t, f.ID, id)
				return f, nil
			},
		}
		r, token := newFileRouter(files)

		req := httptest.NewRequest(http.MethodDelete,
			RouteUsers+"/"+ownerID.String()+"/files/"+f.ID.String(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown file", func(t *testing.T) {
		files := &FakeFileService{
			RemoveFunc: func(ctx context.Context, id uuid.UUID) (*domainFile.File, error) {
				return nil, domainFile.ErrNotFound
			},
		}
		r, token := newFileRouter(files)

		req := httptest.NewRequest(http.MethodDelete,
			RouteUsers+"/"+ownerID.String()+"/files/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "file not found")
	})
}
