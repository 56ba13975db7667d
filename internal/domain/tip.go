package domain

// Tip is a piece of educational content shown while a track is generated.
type Tip struct {
	ID      string  `json:"id" yaml:"id"`
	Title   string  `json:"title" yaml:"title"`
	Content string  `json:"content" yaml:"content"`
	Kind    TipKind `json:"type" yaml:"type"`
}
