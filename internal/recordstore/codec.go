package recordstore

import "encoding/json"

// DecodeAll unmarshals a batch of stored documents into typed records.
func DecodeAll[T any](docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := json.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Decode unmarshals a single stored document, mapping the store's "absent"
// convention (nil document) to a nil record.
func Decode[T any](doc []byte) (*T, error) {
	if doc == nil {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(doc, v); err != nil {
		return nil, err
	}
	return v, nil
}
