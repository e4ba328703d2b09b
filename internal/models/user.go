package models

import "github.com/go-openapi/strfmt"

type User struct {
	Id        string          `json:"id" yaml:"id"`
	Username  string          `json:"username" yaml:"username"`
	AvatarUrl string          `json:"avatarUrl,omitempty" yaml:"avatar"`
	JoinDate  strfmt.DateTime `json:"joinDate" yaml:"joined"`
	Stats     UserStats       `json:"stats" yaml:"-"`
}

type UserStats struct {
	Posts           int `json:"posts"`
	Threads         int `json:"threads"`
	UpvotesReceived int `json:"upvotesReceived"`
}
