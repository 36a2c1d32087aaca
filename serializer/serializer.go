package serializer

// Serializer encodes/decodes values V to []byte for storage.
type Serializer[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
