// Package diagfmt renders read errors and token listings for humans and
// tools.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/xiam/sexpression/lexer"
)

func palette(enabled bool) (loc, sev, msg, caret *color.Color) {
	loc = color.New(color.Bold)
	sev = color.New(color.FgRed, color.Bold)
	msg = color.New(color.Bold)
	caret = color.New(color.FgGreen, color.Bold)
	for _, c := range []*color.Color{loc, sev, msg, caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return loc, sev, msg, caret
}

// Pretty prints err as
//
//	<name>:<line>:<col>: error: <message>
//
// followed, when opts.ShowPreview is set, by the source line and a caret
// under the failing column. Errors without a position are printed as
// "<name>: error: <message>".
func Pretty(w io.Writer, name, src string, err error, opts PrettyOpts) error {
	if err == nil {
		return nil
	}
	locColor, sevColor, msgColor, caretColor := palette(opts.Color)

	perr, ok := lexer.AsError(err)
	if !ok {
		_, werr := fmt.Fprintf(w, "%s %s %s\n",
			locColor.Sprintf("%s:", name), sevColor.Sprint("error:"), msgColor.Sprint(err.Error()))
		return werr
	}

	message := perr.Kind.Err().Error()
	if perr.Context != "" {
		message = fmt.Sprintf("%s: %q", message, perr.Context)
	}
	if _, werr := fmt.Fprintf(w, "%s %s %s\n",
		locColor.Sprintf("%s:%v:", name, perr.Pos), sevColor.Sprint("error:"), msgColor.Sprint(message)); werr != nil {
		return werr
	}

	if !opts.ShowPreview {
		return nil
	}

	p := previewAt(src, perr.Pos, opts.Width)
	gutter := fmt.Sprintf("%5d | ", perr.Pos.Line)
	blank := fmt.Sprintf("%5s | ", "")
	if _, werr := fmt.Fprintf(w, "%s%s\n", gutter, p.line); werr != nil {
		return werr
	}
	_, werr := fmt.Fprintf(w, "%s%s%s\n", blank, p.pad, caretColor.Sprint("^"))
	return werr
}
