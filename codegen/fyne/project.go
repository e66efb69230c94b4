package fyne

// Status summarizes the outcome of a generation run.
type Status string

const (
	// StatusOK means every binding and action resolved cleanly.
	StatusOK Status = "ok"

	// StatusWarnings means deterministic fallbacks were substituted; the
	// project is usable but the report must be surfaced.
	StatusWarnings Status = "generated_with_warnings"
)

// Warning describes one degraded path taken during generation.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Element string `json:"element,omitempty"` // node id, variable, or asset name
}

// Report aggregates every observable degradation of a generation run.
// Nothing degrades silently: each fallback taken is recorded here.
type Report struct {
	Status             Status    `json:"status"`
	Warnings           []Warning `json:"warnings,omitempty"`
	FormattingDegraded bool      `json:"formattingDegraded,omitempty"`
}

// File is one emitted source file.
type File struct {
	Name    string
	Content []byte
}

// Project is the generated output: a build manifest, an entry point, and an
// application-state module, in that order.
type Project struct {
	// Module is the sanitized Go module name derived from the project name.
	Module string

	// Title is the document's display name, used for the window title.
	Title string

	Files  []File
	Report Report
}

// File returns the named file's content, or nil if absent.
func (p *Project) File(name string) []byte {
	for _, f := range p.Files {
		if f.Name == name {
			return f.Content
		}
	}
	return nil
}
