package dataset

import (
	"os"
	"strconv"
	"strings"

	"github.com/parridge/parridge/pkg/errors"
)

// WriteVector writes v to path as a single line of comma-separated
// decimal values. Values round-trip exactly through ReadVector.
func WriteVector(path string, v []float64) error {
	if len(v) == 0 {
		return errors.NewValueError("dataset.WriteVector", "empty vector")
	}

	fields := make([]string, len(v))
	for i, x := range v {
		fields[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	line := strings.Join(fields, ",") + "\n"

	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return errors.Wrap(err, "writing vector file")
	}
	return nil
}

// ReadVector reads a vector written by WriteVector: one line of
// comma-separated decimal values.
func ReadVector(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading vector file")
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, errors.NewParseError(path, 0, "", errors.ErrEmptyData)
	}

	fields := strings.Split(text, ",")
	v := make([]float64, len(fields))
	for i, field := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.NewParseError(path, 1, field, err)
		}
		v[i] = x
	}
	return v, nil
}
