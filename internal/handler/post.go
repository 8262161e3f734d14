// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines the blog post endpoints: an unauthenticated
// listing and an authenticated create.
package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kasraef/blog-backend/internal/queue"
	"github.com/kasraef/blog-backend/internal/repository"
	"github.com/kasraef/blog-backend/internal/service"
)

// PostHandler bundles the repository needed for the blog endpoints.
type PostHandler struct {
	Posts *repository.PostRepo
}

func NewPostHandler(posts *repository.PostRepo) *PostHandler {
	return &PostHandler{Posts: posts}
}

// addBlogReq mirrors the request body the frontend sends. Field names are
// kept as the client knows them; they map onto the blog_posts columns.
type addBlogReq struct {
	Name        string `json:"name"`
	ImgURL      string `json:"imgUrl"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Date        string `json:"date"`
}

// GetAllPosts returns every blog post as a JSON array. The Redis response
// cache sits in front of this route, so most reads never reach the pool.
func (h *PostHandler) GetAllPosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	posts, err := h.Posts.ListAll(ctx)
	if err != nil {
		log.Printf("posts: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error fetching data"})
	}
	return c.JSON(http.StatusOK, posts)
}

// AddBlog inserts a blog post. The route is JWT-protected; the author id
// comes from the verified token, never from the body.
func (h *PostHandler) AddBlog(c echo.Context) error {
	var req addBlogReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Posts.Create(ctx, req.Name, req.Description, req.Date, req.ImgURL, req.Tags)
	if err != nil {
		log.Printf("posts: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error posting data"})
	}

	authorID, _ := c.Get("user_id").(string)
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = service.PublishPostPublished(pubCtx, queue.PostPublishedEvent{
			PostID:      id,
			Title:       req.Name,
			AuthorID:    authorID,
			PublishedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusCreated, echo.Map{"message": "Blog Added to database"})
}
