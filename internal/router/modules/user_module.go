package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/grocery-list/internal/container"
	handlers "github.com/oksasatya/grocery-list/internal/interface/http"
	"github.com/oksasatya/grocery-list/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes
// Public: POST /api/users
type UserModule struct {
	Handler   *handlers.UserHandler
	RateLimit int
}

func NewUserModule(h *handlers.UserHandler, perMinute int) *UserModule {
	return &UserModule{Handler: h, RateLimit: perMinute}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), m.RateLimit, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.POST("/users", createLimiter, m.Handler.Create)
}
