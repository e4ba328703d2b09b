package models

import "github.com/go-openapi/strfmt"

type Thread struct {
	Id           string          `json:"id" yaml:"id"`
	CategoryId   string          `json:"category" yaml:"category"`
	Title        string          `json:"title" yaml:"title"`
	AuthorId     string          `json:"author" yaml:"author"`
	Created      strfmt.DateTime `json:"created" yaml:"created"`
	ReplyCount   int             `json:"replyCount" yaml:"-"`
	Upvotes      int             `json:"upvotes" yaml:"-"`
	LastActivity strfmt.DateTime `json:"lastActivity" yaml:"-"`
}

// ThreadPosts is one page of a thread as shown to a reader.
type ThreadPosts struct {
	Thread   *Thread     `json:"thread"`
	Original *PostNode   `json:"original,omitempty"`
	Sort     string      `json:"sort"`
	Posts    []*PostNode `json:"items"`
	PageInfo
}
