package model

// IndexRow is one line of the README problem table.
type IndexRow struct {
	Key        string
	Title      string
	URL        string
	Difficulty Difficulty
	Language   string
	Date       string
}

// IndexStats summarises the rows of the README table.
type IndexStats struct {
	Easy   int
	Medium int
	Hard   int
	Total  int
}
