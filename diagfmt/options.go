package diagfmt

// PrettyOpts configures pretty-printing of read errors.
type PrettyOpts struct {
	Color       bool
	ShowPreview bool // source line and caret under the failing column
	Width       int  // maximum display width of the preview line, 0 means unlimited
}
