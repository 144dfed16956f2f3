package engine

import (
	"errors"
	"strconv"

	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tidwall/gjson"
)

// Decode errors of the gviz export.
var (
	ErrPayloadTooShort  = errors.New(config.ErrPayloadTooShort)
	ErrMalformedPayload = errors.New(config.ErrMalformedPayload)
	ErrMissingRows      = errors.New(config.ErrMissingRows)
)

// Unwrap strips the fixed-length JavaScript wrapper around the gviz JSON.
// The wrapper bytes are opaque and not inspected.
func Unwrap(body []byte) ([]byte, error) {
	if len(body) < config.GvizPrefixLen+config.GvizSuffixLen {
		return nil, ErrPayloadTooShort
	}
	return body[config.GvizPrefixLen : len(body)-config.GvizSuffixLen], nil
}

// DecodeTable converts the gviz table into rows of cell strings.
// Missing cells and null values become "" so positional access stays safe.
func DecodeTable(payload []byte) ([][]string, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrMalformedPayload
	}

	rows := gjson.GetBytes(payload, config.GvizPathRows)
	if !rows.IsArray() {
		return nil, ErrMissingRows
	}

	out := make([][]string, 0, len(rows.Array()))
	rows.ForEach(func(_, row gjson.Result) bool {
		cells := row.Get(config.GvizPathCells).Array()
		values := make([]string, len(cells))
		for i, cell := range cells {
			values[i] = cellString(cell.Get(config.GvizPathValue))
		}
		out = append(out, values)
		return true
	})

	return out, nil
}

// cellString renders a gviz cell value the way a spreadsheet displays it.
// Numbers use the shortest plain decimal form so phone numbers stay digits.
func cellString(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		return v.Raw
	}
}
