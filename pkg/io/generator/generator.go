package generator

// Options defines where a generator writes its output.
type Options struct {
	// Output is the file path to write. When empty the result is only returned.
	Output string
	// Force overwrites an existing file at Output.
	Force bool
}

// Generator turns a model into its serialized form and optionally writes it to disk.
// The Options type parameter allows each implementation to define its own options structure.
type Generator[T any, Options any] interface {
	Generate(model T, opts Options) (string, error)
}
