// Package output provides styled terminal output for the survey engine.
//
// # Overview
//
// The resolver and the CLI share this package for every message that is
// not a prompt: question help text, run summaries, errors, and verbose
// diagnostics. Prompts themselves are rendered by the line source.
//
// # Styling
//
// Messages are styled with lipgloss:
//   - Help text is muted and italic
//   - Success is green and bold, errors red and bold
//   - Info is cyan, steps and verbose output gray
//
// # Redirection
//
// All output goes through a package-level writer, stdout by default.
// Tests redirect it with SetWriter to assert on emitted text:
//
//	var buf bytes.Buffer
//	output.SetWriter(&buf)
//	defer output.SetWriter(nil)
package output
