package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domainwebcall "github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/infrastructure/metrics"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/handlers"
	webcallreq "github.com/janhq/webcall-relay/internal/interfaces/httpserver/requests/webcall"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/responses"
	webcallres "github.com/janhq/webcall-relay/internal/interfaces/httpserver/responses/webcall"
	"github.com/janhq/webcall-relay/internal/utils/platformerrors"
)

// RegisterWebCallRoutes registers the web call routes. OPTIONS preflights
// are answered by the CORS middleware before routing.
func RegisterWebCallRoutes(router gin.IRoutes, handler *handlers.WebCallHandler, exposeDetails bool, log zerolog.Logger) {
	router.POST("/create-web-call", createWebCall(handler, exposeDetails, log))
	router.GET("/agents", listAgents(handler))
}

// createWebCall godoc
// @Summary      Create a web call
// @Description  Exchanges the server-held vendor key for a short-lived access token for one call.
// @Tags         Web Calls
// @Accept       json
// @Produce      json
// @Param        request body webcallreq.CreateWebCallRequest false "Call request"
// @Success      200 {object} webcallres.WebCallResponse
// @Failure      400 {object} responses.ErrorResponse
// @Failure      405 {object} responses.ErrorResponse
// @Failure      500 {object} responses.ErrorResponse
// @Failure      502 {object} responses.ErrorResponse
// @Router       /api/create-web-call [post]
func createWebCall(handler *handlers.WebCallHandler, exposeDetails bool, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body webcallreq.CreateWebCallRequest
		if hasBody(c.Request) {
			if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
				metrics.RecordWebCallFailure("bad_request")
				platformerrors.WriteValidationError(c, "Invalid request body", err.Error())
				return
			}
		}

		call, err := handler.CreateWebCall(c.Request.Context(), &domainwebcall.CreateWebCallRequest{
			AgentType: body.AgentType.String(),
			UserID:    body.UserID,
			Metadata:  body.Metadata,
		})
		if err != nil {
			metrics.RecordWebCallFailure(responses.FailureReason(err))
			responses.HandleError(c, err, exposeDetails, log)
			return
		}

		metrics.RecordWebCallCreated(agentLabel(handler, body.AgentType.String()))
		c.JSON(http.StatusOK, webcallres.NewWebCallResponse(call))
	}
}

// listAgents godoc
// @Summary      List agent types
// @Description  Lists the agent selectors accepted by create-web-call.
// @Tags         Web Calls
// @Produce      json
// @Success      200 {object} webcallres.AgentListResponse
// @Router       /api/agents [get]
func listAgents(handler *handlers.WebCallHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		types, defaultType := handler.ListAgentTypes()
		c.JSON(http.StatusOK, webcallres.NewAgentListResponse(types, defaultType, handler.AgentLabels()))
	}
}

func agentLabel(handler *handlers.WebCallHandler, agentType string) string {
	agentType = strings.ToLower(strings.TrimSpace(agentType))
	if agentType == "" {
		_, agentType = handler.ListAgentTypes()
	}
	return agentType
}

// hasBody reports whether r may carry a body. A missing or zero-length body
// is treated as {}.
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
