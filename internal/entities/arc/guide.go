package arc

// Guide is a strategy guide looked up by topic
type Guide struct {
	Title    string         `json:"title"`
	Sections []GuideSection `json:"sections"`
}

// GuideSection is one heading/content block of a guide
type GuideSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}
