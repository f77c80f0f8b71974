// Package server exposes verification over HTTP for callers that do
// not shell out to the CLI.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veritaslabs/veritas/internal/model"
)

// Verifier is the part of the engine the server needs.
type Verifier interface {
	Verify(ctx context.Context, topic string) model.Assessment
}

// VerifyRequest is the POST /verify body.
type VerifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// Server wraps a gin router around a verifier.
type Server struct {
	verifier Verifier
	router   *gin.Engine
}

// New creates the HTTP server.
func New(verifier Verifier) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	s := &Server{verifier: verifier, router: router}

	router.GET("/healthz", s.handleHealth)
	router.POST("/verify", s.handleVerify)

	return s
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleVerify runs one verification request. Degraded assessments
// still return 200: the error taxonomy lives inside the body, so
// consumers keep a single decode path.
func (s *Server) handleVerify(ctx *gin.Context) {
	var req VerifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	assessment := s.verifier.Verify(ctx.Request.Context(), req.Text)
	ctx.JSON(http.StatusOK, assessment)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
