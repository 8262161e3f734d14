package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/kasraef/blog-backend/internal/model"
)

// PostRepo provides access to the blog_posts table.
type PostRepo struct{ DB *sql.DB }

func NewPostRepo(db *sql.DB) *PostRepo { return &PostRepo{DB: db} }

// ListAll returns every blog post, newest rows last (insertion order).
func (r *PostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,description,date,image,tags FROM blog_posts")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Date, &p.Image, &p.Tags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a post with a server-generated UUID and returns it.
func (r *PostRepo) Create(ctx context.Context, title, description, date, image, tags string) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO blog_posts (id, title, description, date, image, tags) VALUES (?,?,?,?,?,?)",
		id, title, description, date, image, tags)
	if err != nil {
		return "", err
	}
	return id, nil
}
