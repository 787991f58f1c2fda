package marshaller

// Marshaller serializes models to strings and back.
type Marshaller[T any] interface {
	// Marshal serializes the model into a string representation.
	Marshal(model T) (string, error)
	// Unmarshal deserializes data into model.
	Unmarshal(data []byte, model *T) error
	// UnmarshalString deserializes a string into model.
	UnmarshalString(data string, model *T) error
}
