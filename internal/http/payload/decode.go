package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jellydator/validation"
)

// FormBinder is implemented by payloads that arrive form-encoded.
type FormBinder interface {
	BindForm(values url.Values)
}

// Decoder decodes request bodies into payload structs and runs their validation rules.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func (d Decoder) DecodeFormPayload(r *http.Request, object FormBinder) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form payload: %w", err)
	}

	object.BindForm(r.PostForm)

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
