package models

type Status struct {
	Categories int `json:"category"`
	Users      int `json:"user"`
	Threads    int `json:"thread"`
	Posts      int `json:"post"`
}
