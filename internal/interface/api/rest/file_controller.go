package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	domainFile "account-manager-api/internal/domain/file"
	"account-manager-api/internal/domain/query"
	domain "account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/jwt"
	fileDTO "account-manager-api/internal/interface/api/rest/dto/file"
	"account-manager-api/internal/interface/api/rest/middleware"
	"account-manager-api/internal/interface/api/rest/validator"
)

// 10MB
const maxUploadSize = int64(10 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)

	r.GET(RouteUserFiles, fc.GetFilesHandler)
	r.POST(RouteUserFiles, authed, fc.UploadFileHandler)
	r.DELETE(RouteUserFile, authed, fc.DeleteFileHandler)

	return fc
}

func (fc *FileController) GetFilesHandler(c *gin.Context) {
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}
	pg, err := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}
	params := query.Params{
		Search: c.Query("search"),
		Sort:   validator.ValidateSort(c.Query("sort"), c.Query("order")),
	}

	res, err := fc.fileService.ListByOwner(c.Request.Context(), domainFile.OwnerUser, userID, params, pg)
	if err != nil {
		fc.renderError(c, err, "ListByOwner")
		return
	}

	c.JSON(http.StatusOK, fileDTO.ToPageResponse(res))
}

// UploadFileHandler accepts a multipart form with a "file" part and a
// "file_type" field. Re-uploading the same file type for a user
// replaces the previous file.
func (fc *FileController) UploadFileHandler(c *gin.Context) {
	ok, userID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	ft := domainFile.Type(c.PostForm("file_type"))
	if ft == "" {
		ft = domainFile.Type(c.Query("file_type"))
	}
	if !ft.Valid() {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_type must be AVATAR, DOCUMENT or ATTACHMENT"},
		)
		return
	}

	in, err := c.FormFile("file")
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "missing file"},
		)
		return
	}
	if in.Size > maxUploadSize {
		c.JSON(
			http.StatusRequestEntityTooLarge,
			gin.H{"error": "file exceeds 10MB limit"},
		)
		return
	}

	f, err := fc.fileService.Attach(c.Request.Context(), domainFile.OwnerUser, userID, ft, in)
	if err != nil {
		fc.renderError(c, err, "Attach")
		return
	}

	c.JSON(http.StatusCreated, fileDTO.ToResponseFile(f))
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	ok, fileID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	if _, err := fc.fileService.Remove(c.Request.Context(), fileID); err != nil {
		fc.renderError(c, err, "Remove")
		return
	}

	c.Status(http.StatusNoContent)
}

func (fc *FileController) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, domainFile.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domainFile.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		fc.logger.Error(op+"() error", zap.Error(err))
	}
}
