package domain

// Post is a page post as returned by the Graph API
type Post struct {
	ID          string `json:"id"`
	Message     string `json:"message,omitempty"`
	CreatedTime string `json:"created_time,omitempty"`
}

// Posts is a single page of posts
type Posts struct {
	Data []Post `json:"data"`
}

// Comment is a single post comment
type Comment struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Comments is a list of comments in Graph envelope form
type Comments struct {
	Data []Comment `json:"data"`
}

// Insight is one metric from a post's insights edge
type Insight struct {
	Name   string
	Period string
	Title  string
	Values []InsightValue
}

// InsightValue holds a metric value; Value is a number or an object of counters
type InsightValue struct {
	Value   any
	EndTime string
}
