package models

import "github.com/go-openapi/strfmt"

type Category struct {
	Id           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description" yaml:"description"`
	Icon         string          `json:"icon" yaml:"icon"`
	ThreadCount  int             `json:"threadCount" yaml:"-"`
	LastActivity strfmt.DateTime `json:"lastActivity" yaml:"-"`
}
