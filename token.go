package diffconv

// Token is a run of source text with a display style attached.
type Token struct {
	Text  string
	Style Style
}

// Style describes how a token should be displayed.
type Style struct {
	Foreground string // hex color, empty for default
	Bold       bool
}

// Tokenizer splits source code into display tokens.
type Tokenizer interface {
	// Tokenize returns tokens for source, picking a language from path.
	// Returns nil if the language is not supported and an empty slice for
	// empty source.
	Tokenize(path, source string) []Token
}
