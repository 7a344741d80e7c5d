// Package viz holds the lipgloss styles and small glyph renderers shared by
// the text report and the interactive editor.
package viz
