package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	groceryapp "github.com/oksasatya/grocery-list/internal/application"
	"github.com/oksasatya/grocery-list/internal/domain/entity"
	"github.com/oksasatya/grocery-list/pkg/response"
	"github.com/oksasatya/grocery-list/pkg/validation"
)

type UserHandler struct {
	Svc    *groceryapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *groceryapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// an "id" in the request body is ignored
type createUserRequest struct {
	Name  string `json:"name" binding:"required,nonblank"`
	Email string `json:"email" binding:"required,email"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create handles POST /api/users. Any repository failure is reported as a
// bare 500; the cause only goes to the log.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNameRequired) || errors.Is(err, entity.ErrUserEmailRequired) {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", err.Error())
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("create user failed")
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: u.ID, Name: u.Name, Email: u.Email})
}
