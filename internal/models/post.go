package models

import "github.com/go-openapi/strfmt"

//easyjson:json
type Post struct {
	Id       string          `json:"id" yaml:"id"`
	ThreadId string          `json:"thread" yaml:"thread"`
	AuthorId string          `json:"author" yaml:"author"`
	ParentId string          `json:"parent" yaml:"parent"`
	Content  string          `json:"content" yaml:"content"`
	Created  strfmt.DateTime `json:"created" yaml:"created"`
	Upvotes  int             `json:"upvotes" yaml:"upvotes"`
}

// PostNode is a post placed in the reply tree of its thread.
//
//easyjson:json
type PostNode struct {
	Post
	Depth    int         `json:"depth"`
	Children []*PostNode `json:"children,omitempty"`
}

func (p *Post) IsRoot() bool {
	return p.ParentId == ""
}
