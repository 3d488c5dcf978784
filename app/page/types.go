package page

// Page is the flat record the reader collects from a single HTML
// document: ephemeral, produced per fetch, discarded after extraction.
type Page struct {
	Title            string
	Links            []string
	Meta             map[string]string
	Images           []string
	StructuredBlocks []string
}
