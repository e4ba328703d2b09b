package models

// PageInfo describes the slice of a longer list a response carries.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"totalPages"`
	Pages      []int `json:"pages"`
}

type NewThread struct {
	Title    string `json:"title" validate:"required,max=200"`
	AuthorId string `json:"author" validate:"required"`
	Content  string `json:"content" validate:"required,max=10000"`
}

type NewUser struct {
	Username  string `json:"username" validate:"required,max=50"`
	AvatarUrl string `json:"avatarUrl" validate:"omitempty,url"`
}

type NewPost struct {
	AuthorId string `json:"author" validate:"required"`
	ParentId string `json:"parent"`
	Content  string `json:"content" validate:"required,max=10000"`
}
