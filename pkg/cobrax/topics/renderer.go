package topics

// Renderer formats topic content for display.
type Renderer interface {
	Render(content string) string
}

// PlainRenderer passes content through untouched.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string) string { return content }
