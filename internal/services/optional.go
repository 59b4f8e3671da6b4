package services

import "encoding/json"

// Optional distinguishes an absent JSON key from an explicit null. Set is
// true when the key appeared in the payload; Value is nil when it was null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (optional *Optional[T]) UnmarshalJSON(data []byte) error {
	optional.Set = true
	if string(data) == "null" {
		optional.Value = nil
		return nil
	}
	return json.Unmarshal(data, &optional.Value)
}

func (optional Optional[T]) MarshalJSON() ([]byte, error) {
	if optional.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(optional.Value)
}
