package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/handlers"
)

// Routes holds the /api route configuration.
type Routes struct {
	handlers      *handlers.Provider
	exposeDetails bool
	log           zerolog.Logger
}

// NewRoutes creates a new api routes instance.
func NewRoutes(handlerProvider *handlers.Provider, exposeDetails bool, log zerolog.Logger) *Routes {
	return &Routes{
		handlers:      handlerProvider,
		exposeDetails: exposeDetails,
		log:           log,
	}
}

// Register registers all /api routes on the engine.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api")
	RegisterWebCallRoutes(group, r.handlers.WebCall, r.exposeDetails, r.log)
}
