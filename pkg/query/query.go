package query

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

var ErrNoMatch = errors.New("no match")

// Eval applies the JSONPath expression to the raw save file,
// e.g. `$.Career.People[?(@.Name == "X")].States`.
func Eval(raw []byte, path string) ([]any, error) {
	x, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", path, err)
	}
	obj, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse career data: %w", err)
	}
	res := x.Get(obj)
	if len(res) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoMatch)
	}
	return res, nil
}

// Format returns v as indented json with sorted keys
func Format(v any) string {
	return oj.JSON(v, &ojg.Options{Indent: 2, Sort: true})
}
