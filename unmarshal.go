// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package konfig

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/z5labs/konfig/key"
	"github.com/z5labs/konfig/value"
)

// TagName is the struct tag used to map document keys onto struct fields.
const TagName = "config"

// UnmarshalError occurs when a resolved document can not be
// decoded into the requested type.
type UnmarshalError struct {
	Cause error
}

// Error implements the error interface.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal resolved config into custom type: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e UnmarshalError) Unwrap() error {
	return e.Cause
}

// MissingFieldError occurs when a required struct field has no
// corresponding key in the resolved document. This is how a linked
// entry without a default and without its environment variable set
// surfaces for non optional fields.
type MissingFieldError struct {
	Path key.Chain
}

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required config field: %s", e.Path.Key())
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when a decode hook fails to convert a
// resolved value into the type of its struct field.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

// Unmarshal decodes a resolved document into v, which must be a non-nil pointer.
// Keys are matched against the `config` struct tag, or the field name when there
// is no tag, ignoring case. Strings are decoded into [encoding.TextUnmarshaler]s
// and strings or integers into [time.Duration]s.
//
// Every missing required field is reported as a [MissingFieldError].
func Unmarshal(t *value.Table, v any) error {
	doc := t.Native()

	missing := missingFields(reflect.TypeOf(v), doc, nil)
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return UnmarshalError{Cause: err}
	}
	err = dec.Decode(doc)
	if err != nil {
		return UnmarshalError{Cause: err}
	}
	return nil
}

func missingFields(rt reflect.Type, doc map[string]any, path key.Chain) []error {
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil
	}

	var errs []error
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, opts := parseTag(field)
		if name == "-" || slices.Contains(opts, "remain") {
			continue
		}
		if slices.Contains(opts, "squash") {
			errs = append(errs, missingFields(field.Type, doc, path)...)
			continue
		}

		fieldPath := path.Append(key.Name(name))
		v, ok := lookupKey(doc, name)
		if !ok {
			if isOptional(field.Type, opts) {
				continue
			}
			errs = append(errs, MissingFieldError{Path: fieldPath})
			continue
		}

		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		errs = append(errs, missingFields(field.Type, sub, fieldPath)...)
	}
	return errs
}

func parseTag(field reflect.StructField) (string, []string) {
	tag := field.Tag.Get(TagName)
	name, rest, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	if rest == "" {
		return name, nil
	}
	return name, strings.Split(rest, ",")
}

// lookupKey mirrors how mapstructure matches keys to field names.
func lookupKey(doc map[string]any, name string) (any, bool) {
	if v, ok := doc[name]; ok {
		return v, true
	}
	for k, v := range doc {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func isOptional(rt reflect.Type, opts []string) bool {
	if slices.Contains(opts, "optional") {
		return true
	}
	switch rt.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int64:
			return time.Duration(data.(int64)), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
