package model

// Post represents a row in the `blog_posts` table.  The Date column is kept
// as a string because the API accepts and returns whatever date label the
// client supplied when the post was written, without interpreting it.
//
// Fields:
//  ID          – server‑generated UUID.
//  Title       – post title.
//  Description – post body.
//  Date        – display date supplied by the author.
//  Image       – URL of the cover image.
//  Tags        – comma‑separated tag list.
type Post struct {
    ID          string `json:"id"`          // blog_posts.id
    Title       string `json:"title"`       // blog_posts.title
    Description string `json:"description"` // blog_posts.description
    Date        string `json:"date"`        // blog_posts.date
    Image       string `json:"image"`       // blog_posts.image
    Tags        string `json:"tags"`        // blog_posts.tags
}
