package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Enhancer is the rewrite capability behind the proxy endpoint.
// *ai.Client satisfies it; tests substitute fakes.
type Enhancer interface {
	Enhance(ctx context.Context, text string) (string, error)
}

// RewriteHandler proxies free-text input to the generative-text service.
type RewriteHandler struct {
	AI Enhancer
}

func NewRewriteHandler(ai Enhancer) *RewriteHandler {
	return &RewriteHandler{AI: ai}
}

type rewriteReq struct {
	Text string `json:"text"`
}

// Rewrite sends the text upstream and returns the enhanced version. The
// upstream is opaque: any failure maps to one generic 500 so nothing about
// the third-party service leaks to clients.
func (h *RewriteHandler) Rewrite(c echo.Context) error {
	var req rewriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	enhanced, err := h.AI.Enhance(ctx, req.Text)
	if err != nil {
		log.Printf("rewrite: upstream call failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "An error occurred while processing your request."})
	}
	return c.JSON(http.StatusOK, echo.Map{"enhancedText": enhanced})
}
