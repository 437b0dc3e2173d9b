package diagfmt

import (
	"fmt"
	"io"

	"github.com/xiam/sexpression/lexer"
)

// FormatTokensPretty prints one token per line with its position and byte
// span.
func FormatTokensPretty(w io.Writer, tokens []lexer.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Type()); err != nil {
			return err
		}
		if tok.Text() != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text()); err != nil {
				return err
			}
		}
		span := tok.Span()
		if _, err := fmt.Fprintf(w, " at %v [%d,%d)\n", tok.Position(), span.Start, span.End); err != nil {
			return err
		}
		if tok.Is(lexer.TokenEOF) {
			break
		}
	}
	return nil
}
