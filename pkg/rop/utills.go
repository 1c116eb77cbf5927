package rop

import (
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// render produces the diagnostic form of a payload used in fault messages.
func render(v any) string {
	if IsNil(v) {
		return "null"
	}

	switch p := v.(type) {
	case error:
		v = p.Error()
	case fmt.Stringer:
		v = p.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}
