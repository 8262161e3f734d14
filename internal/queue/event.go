// Package queue defines message payloads exchanged over the message broker.
package queue

// UserRegisteredEvent is published when a registration succeeds.  It carries
// the server-generated id and the username, never anything password-derived,
// so downstream consumers can log or trigger welcome flows without touching
// the credential table.
type UserRegisteredEvent struct {
    UserID       string `json:"user_id"`
    Username     string `json:"username"`
    RegisteredAt string `json:"registered_at"`
}

// PostPublishedEvent is published when a blog post is inserted.
type PostPublishedEvent struct {
    PostID      string `json:"post_id"`
    Title       string `json:"title"`
    AuthorID    string `json:"author_id"`
    PublishedAt string `json:"published_at"`
}
