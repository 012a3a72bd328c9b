// Package domain defines core business entities and value objects for codescout.
//
// The domain layer is independent of infrastructure concerns and represents
// pure data structures passed between the cache, gateway, and tool layers.
package domain

// ContentBlock is a single piece of textual payload inside a Result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the uniform envelope every external-command outcome is
// normalized into. It is the single currency passed between layers and is
// never mutated after construction.
type Result struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

// TextResult builds a successful single-block Result.
func TextResult(text string) Result {
	return Result{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult builds a failed single-block Result.
func ErrorResult(text string) Result {
	return Result{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// Text joins the text of all content blocks. Most Results carry exactly one
// block; the join keeps multi-block payloads readable.
func (r Result) Text() string {
	switch len(r.Content) {
	case 0:
		return ""
	case 1:
		return r.Content[0].Text
	}
	out := r.Content[0].Text
	for _, block := range r.Content[1:] {
		out += "\n" + block.Text
	}
	return out
}
