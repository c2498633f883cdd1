// ABOUTME: Social feed models: posts, comments, and like sets.
// ABOUTME: Author attribution is by value so posts outlive accounts.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is one reply on a post.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorImage string    `json:"author_image,omitempty"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

// Post is one entry in the shared social feed. Likes holds user IDs;
// membership means "liked" and duplicates are never stored.
type Post struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    string    `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorImage string    `json:"author_image,omitempty"`
	Content     string    `json:"content"`
	Image       string    `json:"image,omitempty"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPost creates a post authored by the given user.
func NewPost(author *User, content, image string) *Post {
	return &Post{
		ID:          uuid.New(),
		AuthorID:    author.ID.String(),
		AuthorName:  author.Name,
		AuthorImage: author.ProfileImage,
		Content:     content,
		Image:       image,
		Likes:       []string{},
		Comments:    []Comment{},
		CreatedAt:   time.Now(),
	}
}

// NewComment creates a comment authored by the given user.
func NewComment(author *User, text string) Comment {
	return Comment{
		ID:          uuid.New(),
		AuthorID:    author.ID.String(),
		AuthorName:  author.Name,
		AuthorImage: author.ProfileImage,
		Text:        text,
		CreatedAt:   time.Now(),
	}
}

// Clone returns a copy of the post with its own like and comment
// slices.
func (p Post) Clone() Post {
	c := p
	c.Likes = append([]string(nil), p.Likes...)
	c.Comments = append([]Comment(nil), p.Comments...)
	return c
}

// LikedBy reports whether the given user ID is in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds the user ID to the like set, or removes it when
// already present.
func (p *Post) ToggleLike(userID string) {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return
		}
	}
	p.Likes = append(p.Likes, userID)
}
