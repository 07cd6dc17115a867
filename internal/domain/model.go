package domain

import "strings"

// GenerateContentMethod is the capability marker a catalog model must list
// to be usable for diagnostics.
const GenerateContentMethod = "generateContent"

// CatalogModel is one entry from the backend model catalog.
type CatalogModel struct {
	Name    string   // full resource name, e.g. "models/gemini-2.5-flash"
	Methods []string // supported generation methods
}

// ID returns the usable identifier: the final path segment of Name.
func (m CatalogModel) ID() string {
	if i := strings.LastIndex(m.Name, "/"); i >= 0 {
		return m.Name[i+1:]
	}
	return m.Name
}

// SupportsGeneration reports whether the model can serve content generation.
func (m CatalogModel) SupportsGeneration() bool {
	for _, method := range m.Methods {
		if method == GenerateContentMethod {
			return true
		}
	}
	return false
}
