package types

// Transformer rewrites one line of text into its stylised form.
// Implementations must be pure: the same input always yields the same output.
type Transformer interface {
	Transform(input string) string
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(input string) string

func (f TransformerFunc) Transform(input string) string {
	return f(input)
}

// Style represents a named transformer with its selection shortcut
type Style struct {
	Name        string
	Shortcut    string
	Transformer Transformer
}
