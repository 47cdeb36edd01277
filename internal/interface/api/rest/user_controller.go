package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-manager-api/internal/application/ports"
	"account-manager-api/internal/domain/query"
	domain "account-manager-api/internal/domain/user"
	"account-manager-api/internal/infrastructure/jwt"
	"account-manager-api/internal/interface/api/rest/dto/user"
	"account-manager-api/internal/interface/api/rest/middleware"
	"account-manager-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, authed, adminOnly, uc.CreateUserHandler)
	r.PUT(RouteUser, authed, uc.UpdateUserHandler)
	r.PUT(RouteUserPassword, authed, uc.UpdatePasswordHandler)
	r.POST(RouteUserDeactivate, authed, adminOnly, uc.DeactivateHandler)
	r.POST(RouteUserReactivate, authed, adminOnly, uc.ReactivateHandler)
	r.DELETE(RouteUser, authed, adminOnly, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
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

	res, err := uc.userService.FindPage(c.Request.Context(), params, pg)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindPage() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ToPageResponse(res))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, ok := uc.pathID(c)
	if !ok {
		return
	}

	pub, err := uc.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		uc.renderError(c, err, "FindByID")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*pub))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pub, err := uc.userService.Create(c.Request.Context(), domain.CreateInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.Role(req.Role),
		IsActive: req.IsActive,
	})
	if err != nil {
		uc.renderError(c, err, "Create")
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*pub))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, ok := uc.pathID(c)
	if !ok {
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateUser(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pub, err := uc.userService.UpdateProfile(c.Request.Context(), id, domain.UpdateInput{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		uc.renderError(c, err, "UpdateProfile")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*pub))
}

func (uc *UserController) UpdatePasswordHandler(c *gin.Context) {
	id, ok := uc.pathID(c)
	if !ok {
		return
	}

	var req user.PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidatePasswordChange(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pub, err := uc.userService.UpdatePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		uc.renderError(c, err, "UpdatePassword")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*pub))
}

func (uc *UserController) DeactivateHandler(c *gin.Context) {
	uc.setActive(c, false)
}

func (uc *UserController) ReactivateHandler(c *gin.Context) {
	uc.setActive(c, true)
}

func (uc *UserController) setActive(c *gin.Context, active bool) {
	id, ok := uc.pathID(c)
	if !ok {
		return
	}

	var (
		pub *domain.Public
		err error
	)
	if active {
		pub, err = uc.userService.Reactivate(c.Request.Context(), id)
	} else {
		pub, err = uc.userService.Deactivate(c.Request.Context(), id)
	}
	if err != nil {
		uc.renderError(c, err, "SetActive")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*pub))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, ok := uc.pathID(c)
	if !ok {
		return
	}

	if err := uc.userService.Delete(c.Request.Context(), id); err != nil {
		uc.renderError(c, err, "Delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) pathID(c *gin.Context) (uuid.UUID, bool) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return uuid.Nil, false
	}
	return id, true
}

// renderError maps domain failures onto status codes; anything
// unclassified becomes a generic 500 with the detail logged only.
func (uc *UserController) renderError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidEmail), errors.Is(err, domain.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		uc.logger.Error(op+"() error", zap.Error(err))
	}
}
