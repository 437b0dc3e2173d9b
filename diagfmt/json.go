package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/xiam/sexpression/lexer"
)

// LocationJSON is the position of a read error.
type LocationJSON struct {
	File   string `json:"file"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// ErrorJSON is the machine readable form of a read error.
type ErrorJSON struct {
	Kind     string        `json:"kind"`
	Message  string        `json:"message"`
	Context  string        `json:"context,omitempty"`
	Location *LocationJSON `json:"location,omitempty"`
}

// JSON writes err as a single JSON object followed by a line break. Errors
// without a position have kind "error" and no location.
func JSON(w io.Writer, name string, err error) error {
	out := ErrorJSON{
		Kind:    "error",
		Message: err.Error(),
	}
	if perr, ok := lexer.AsError(err); ok {
		out.Kind = perr.Kind.String()
		out.Message = perr.Kind.Err().Error()
		out.Context = perr.Context
		out.Location = &LocationJSON{
			File:   name,
			Offset: perr.Pos.Offset,
			Line:   perr.Pos.Line,
			Column: perr.Pos.Column,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
