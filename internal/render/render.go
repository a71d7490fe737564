package render

import "strings"

// Markdown renders markdown content for terminal display using a cached
// renderer for opts.
func Markdown(content string, opts Options) (string, error) {
	entry, err := renderers.lookup(opts)
	if err != nil {
		return "", err
	}
	return entry.render(content)
}

// MarkdownWithWidth renders with the default options at the given width.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// MarkdownOrPlain renders content and falls back to the raw text on error.
// Trailing newlines added by glamour are trimmed.
func MarkdownOrPlain(content string, opts Options) string {
	rendered, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
