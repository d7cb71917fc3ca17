package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// The save file is produced by a game and is not validated. The types in this file
// never fail to decode: values of an unexpected shape fall back to their zero value.

// Int is an integer which also accepts floats and numeric strings.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*i = 0
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*i = Int(v)
	case string:
		n, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil {
			n = 0
		}
		*i = Int(n)
	default:
		*i = 0
	}
	return nil
}

// Points holds a score value. Scores may be fractional, so they are kept as decimals.
type Points struct {
	decimal.Decimal
}

func NewPoints(v int64) Points {
	return Points{decimal.NewFromInt(v)}
}

func (p *Points) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(bytes.TrimSpace(data)); err != nil {
		p.Decimal = decimal.Zero
		return nil
	}
	p.Decimal = d
	return nil
}

// Text is a string which also accepts numbers and booleans.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = ""
		return nil
	}
	switch v := raw.(type) {
	case string:
		*t = Text(v)
	case float64:
		*t = Text(strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		*t = Text(strconv.FormatBool(v))
	default:
		*t = ""
	}
	return nil
}

func (t Text) String() string { return string(t) }

// List decodes a JSON array element by element. Elements which do not decode into T
// are dropped, anything but an array yields an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*l = nil
		return nil
	}
	ret := make([]T, 0, len(raw))
	for i := range raw {
		var item T
		if err := json.Unmarshal(raw[i], &item); err != nil {
			continue
		}
		ret = append(ret, item)
	}
	*l = ret
	return nil
}
