package helper

import (
	"encoding/json"
	"io"

	"github.com/farkinca1971/office-management-sub003/models"

	"github.com/pkg/errors"
)

// DecodeOrderedParams decodes a JSON object into an ordered parameter
// mapping. Unmarshalling into a Go map would lose the key order the WHERE
// and SET composers depend on, so the object is walked through the token
// stream instead. An empty input decodes to an empty mapping.
func DecodeOrderedParams(r io.Reader) (models.Params, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return models.Params{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "error while reading body")
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("request body must be a JSON object")
	}

	params := models.Params{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "error while reading body key")
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("invalid body key")
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "error while decoding body field %q", key)
		}

		params.Set(key, models.ValueOf(value))
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "error while reading body end")
	}

	return params, nil
}
