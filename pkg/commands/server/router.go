package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wuxler/rxkit/pkg/errdefs"
	"github.com/wuxler/rxkit/pkg/matcher"
	"github.com/wuxler/rxkit/pkg/recipe"
	"github.com/wuxler/rxkit/pkg/xlog"
)

// BuildResponse is the response of POST /v1/build.
type BuildResponse struct {
	Pattern string `json:"pattern"`
}

// MatchRequest is the request of POST /v1/match. Exactly one of Pattern
// and Recipe must be set.
type MatchRequest struct {
	Pattern string         `json:"pattern,omitempty"`
	Recipe  *recipe.Recipe `json:"recipe,omitempty"`
	Inputs  []string       `json:"inputs"`
}

// MatchResponse is the response of POST /v1/match.
type MatchResponse struct {
	Pattern string           `json:"pattern"`
	Results []matcher.Result `json:"results"`
}

// ErrorResponse is returned with any non 2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRouter returns the HTTP handler of the service.
func NewRouter(m *matcher.Matcher) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	h := &handler{matcher: m}
	v1 := router.Group("/v1")
	v1.POST("/build", h.build)
	v1.POST("/match", h.match)
	return router
}

// requestLogger stores a logger annotated with the request into its context
// and reports every served request at debug level.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx := xlog.WithContext(c.Request.Context(), "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		xlog.C(ctx).Debug("request served", "status", c.Writer.Status(), "latency", time.Since(start))
	}
}

type handler struct {
	matcher *matcher.Matcher
}

func (h *handler) build(c *gin.Context) {
	var r recipe.Recipe
	if err := c.ShouldBindJSON(&r); err != nil {
		abort(c, errdefs.NewE(recipe.ErrInvalidRecipe, err))
		return
	}
	pattern, err := r.Build()
	if err != nil {
		abort(c, err)
		return
	}
	xlog.C(c.Request.Context()).Debug("pattern built", "steps", len(r.Steps), "pattern", pattern)
	c.JSON(http.StatusOK, BuildResponse{Pattern: pattern})
}

func (h *handler) match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, errdefs.NewE(errdefs.ErrInvalidParameter, err))
		return
	}
	pattern, err := req.pattern()
	if err != nil {
		abort(c, err)
		return
	}
	results, err := h.matcher.Match(c.Request.Context(), pattern, req.Inputs...)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, MatchResponse{Pattern: pattern, Results: results})
}

func (req *MatchRequest) pattern() (string, error) {
	switch {
	case req.Pattern != "" && req.Recipe != nil:
		return "", errdefs.Newf(errdefs.ErrInvalidParameter, "pattern and recipe are mutually exclusive")
	case req.Recipe != nil:
		return req.Recipe.Build()
	case req.Pattern != "":
		return req.Pattern, nil
	}
	return "", errdefs.Newf(errdefs.ErrInvalidParameter, "one of pattern or recipe is required")
}

func abort(c *gin.Context, err error) {
	status := errdefs.HTTPStatus(err)
	xlog.C(c.Request.Context()).Debug("request failed", "status", status, "error", err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
