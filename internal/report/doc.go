// Package report summarizes an Analyzer and renders the summary as text,
// JSON or YAML, with optional ASCII plots.
package report
