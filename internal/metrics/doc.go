// Package metrics names the scalar statistics an Analyzer can report so the
// CLI, reports and terminal UI can select and order them uniformly.
package metrics
