package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// kind identifies how a logged value is rendered.
type kind uint8

const (
	kindNil kind = iota + 1
	kindString
	kindBytes
	kindError
	kindStringer
	kindComposite
	kindOther
)

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNil
	case string:
		return kindString
	case []byte:
		return kindBytes
	case error:
		return kindError
	case fmt.Stringer:
		return kindStringer
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return kindComposite
	}
	return kindOther
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stringify renders one value. It never panics.
func stringify(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fallback(v)
		}
	}()

	switch kindOf(v) {
	case kindNil:
		return "<nil>"
	case kindString:
		return v.(string)
	case kindBytes:
		return string(v.([]byte))
	case kindError:
		return errorText(v.(error))
	case kindStringer:
		return v.(fmt.Stringer).String()
	case kindComposite:
		// fmt has no cycle detection, so a composite json rejects never
		// reaches it.
		if b, err := marshal(v); err == nil {
			return string(b)
		}
		return unprintable(v)
	}
	return fmt.Sprint(v)
}

// errorText prefers the stack-bearing rendering when any error in the chain
// recorded one.
func errorText(err error) string {
	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", err)
	}
	return err.Error()
}

// marshal is json.Marshal without HTML escaping or the trailing newline.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func fallback(v any) (s string) {
	if kindOf(v) == kindComposite {
		return unprintable(v)
	}
	defer func() {
		if r := recover(); r != nil {
			s = unprintable(v)
		}
	}()
	return fmt.Sprint(v)
}

func unprintable(v any) string {
	return fmt.Sprintf("<unprintable %T>", v)
}
