package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormValue accepts a JSON string or number and keeps its text.
// Numeric form fields arrive both ways depending on the client.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("form value must be a string or a number: %w", err)
		}
		*v = FormValue(n.String())
	}
	return nil
}
