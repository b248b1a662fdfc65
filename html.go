package revealdown

func init() {
	RegisterSourceFormat("html", &HTMLSource{})
	RegisterSourceFormat("htm", &HTMLSource{})
}

// HTMLSource passes HTML decks through unchanged.
type HTMLSource struct{}

func (h *HTMLSource) ToHTML(input []byte) (string, error) {
	return string(input), nil
}
