package payload

import (
	"encoding/json"
	"errors"
)

var errNullNotAllowed = errors.New("cannot be null or blank")

// OptionalString tells an omitted JSON field apart from an explicit null. Set is true whenever
// the key was present in the body.
type OptionalString struct {
	Value *string
	Set   bool
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s

	return nil
}

// presentNotBlank accepts an omitted field and rejects a present one that is null or empty.
func presentNotBlank(value any) error {
	o, ok := value.(OptionalString)
	if !ok || !o.Set {
		return nil
	}
	if o.Value == nil || *o.Value == "" {
		return errNullNotAllowed
	}
	return nil
}
