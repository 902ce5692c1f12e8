package deps

import (
	"encoding/json"
	"io"
)

// WriteJSON serializes a manifest analysis as indented JSON.
func WriteJSON(a *Analysis, w io.Writer) error {
	data, err := json.MarshalIndent(a, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
