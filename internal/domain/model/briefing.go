package model

// Briefing is the complete output of one run: the generated summary
// plus the headlines it was built from. It lives only for the duration
// of the run and is never persisted.
type Briefing struct {
	Topic    string
	Summary  string
	Articles []Article
}
