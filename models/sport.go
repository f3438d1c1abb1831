package models

// Sport is a row of the fixed sport catalog seeded at startup.
type Sport struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}
