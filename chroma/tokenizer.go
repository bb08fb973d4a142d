// Package chroma provides syntax tokenization using the chroma library.
package chroma

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffconv"
)

// Compile-time interface verification.
var _ diffconv.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct{}

// NewTokenizer creates a new chroma-based tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits source code into display tokens, picking a lexer from
// the file path. Returns nil if no lexer matches the path or tokenization
// fails. Returns an empty slice for empty source (valid input, no tokens).
func (t *Tokenizer) Tokenize(path, source string) []diffconv.Token {
	if source == "" {
		return []diffconv.Token{}
	}

	lexer := lexers.Match(path)
	if lexer == nil {
		return nil
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []diffconv.Token
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tokens = append(tokens, diffconv.Token{
			Text:  token.Value,
			Style: tokenStyle(token.Type),
		})
	}

	return tokens
}

// tokenStyle returns the visual style for a chroma token type. The palette
// is a small diff-display subset loosely based on One Dark.
func tokenStyle(tt chroma.TokenType) diffconv.Style {
	switch {
	case tt.InCategory(chroma.Keyword):
		return diffconv.Style{Foreground: "#c678dd", Bold: true}
	case tt.InCategory(chroma.Comment):
		return diffconv.Style{Foreground: "#5c6370"}
	case tt.InSubCategory(chroma.LiteralString):
		return diffconv.Style{Foreground: "#98c379"}
	case tt.InSubCategory(chroma.LiteralNumber):
		return diffconv.Style{Foreground: "#d19a66"}
	case tt.InCategory(chroma.Operator):
		return diffconv.Style{Foreground: "#56b6c2"}
	case tt == chroma.NameBuiltin || tt == chroma.NameBuiltinPseudo:
		return diffconv.Style{Foreground: "#e5c07b"}
	case tt == chroma.NameFunction || tt == chroma.NameFunctionMagic:
		return diffconv.Style{Foreground: "#61afef"}
	default:
		return diffconv.Style{}
	}
}
