// Package common holds helpers shared by the backend emitters: naming
// conversions, text wrapping, output normalization and file headers.
package common

import "strings"

// GeneratedNotice is the marker line every emitted source unit starts with.
const GeneratedNotice = "## This is a generated file. Do not modify it manually!"

// FileDocstring renders the leading module docstring of an emitted Python
// file: what the target library is, a usage sketch, and the generated-file
// warning.
func FileDocstring(library, description, docsURL string) string {
	var b strings.Builder
	b.WriteString("\"\"\"\n")
	b.WriteString("This file contains " + library + " definitions for data handling.\n\n")
	b.WriteString(description + "\n\n")
	b.WriteString("For more information see:\n")
	b.WriteString(docsURL + "\n\n")
	b.WriteString("WARNING: This is an auto-generated file.\n")
	b.WriteString("Do not edit directly - any changes will be overwritten.\n")
	b.WriteString("\"\"\"\n")
	return b.String()
}
