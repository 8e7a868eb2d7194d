package db

import "time"

// Category is a named group of terms. Categories are read back in id order,
// which is the order they were first created.
type Category struct {
	ID   int64
	Name string
}

// TermRow is one stored term joined with its category name.
type TermRow struct {
	ID           int64
	CategoryID   int64
	Category     string
	Phrase       string
	Primary      string
	Alternatives []string
	IsCustom     bool
	AddedAt      time.Time
}
