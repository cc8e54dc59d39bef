package sqm

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal parses the SQM document in data and stores the result in the
// value pointed to by v. Parse options are passed through to [Parse].
//
// See [Decode] for how the tree is mapped onto Go values.
func Unmarshal(data []byte, v any, opts ...Option) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return fmt.Errorf("invalid target, must be a non-nil pointer")
	}
	root, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return decodeValue("", root, value.Elem())
}

// Decode stores src in the value pointed to by v. v should be a non-nil
// pointer to a struct, map, slice, array, interface or scalar. Decode acts
// similarly to json.Unmarshal.
//
// For struct fields, the key is taken from a `sqm:"name"` tag, then a
// `json:"name"` tag, and finally the field name; keys are matched without
// regard to case. Keys with no matching field are ignored.
//
// When decoding into an interface, the value is converted with [Interface].
//
// Numbers can be stored in any numeric kind that can represent them exactly.
// Strings are parsed with the [strconv] package when the target is a number or
// a bool, and are passed to UnmarshalText if the target implements
// [encoding.TextUnmarshaler].
func Decode(src Value, v any) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return fmt.Errorf("invalid target, must be a non-nil pointer")
	}
	return decodeValue("", src, value.Elem())
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func describe(v Value) string {
	switch v.(type) {
	case *Object:
		return "object"
	case *Sequence:
		return "array"
	case Number:
		return "number"
	case String:
		return "string"
	}
	return "nothing"
}

func pathError(path string, format string, args ...any) error {
	if path == "" {
		path = "<root>"
	}
	return fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...))
}

func decodeValue(path string, src Value, v reflect.Value) error {
	if !v.CanSet() {
		panic(fmt.Errorf("cannot set value of type: %v", v.Type()))
	}

	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			text, ok := scalarText(src)
			if !ok {
				return pathError(path, "expected scalar, got %s", describe(src))
			}
			if err := tu.UnmarshalText([]byte(text)); err != nil {
				return pathError(path, "%v", err)
			}
			return nil
		}
	}

	switch v.Kind() {
	case reflect.Struct:
		return decodeStruct(path, src, v)
	case reflect.Map:
		return decodeMap(path, src, v)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return pathError(path, "unsupported type: %v", v.Type())
		}
		if iv := Interface(src); iv != nil {
			v.Set(reflect.ValueOf(iv))
		}
		return nil
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeValue(path, src, v.Elem())
	case reflect.Array:
		return decodeArray(path, src, v)
	case reflect.Slice:
		return decodeSlice(path, src, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Bool,
		reflect.String:
		return setBasicValue(path, src, v)
	}

	return pathError(path, "unsupported type: %v", v.Type())
}

func scalarText(src Value) (string, bool) {
	switch src := src.(type) {
	case String:
		return string(src), true
	case Number:
		return strconv.FormatFloat(float64(src), 'f', -1, 64), true
	}
	return "", false
}

func fieldName(field reflect.StructField) (string, bool) {
	for _, tagName := range []string{"sqm", "json"} {
		if tag, ok := field.Tag.Lookup(tagName); ok {
			if tag == "-" {
				return "", false
			}
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				return name, true
			}
		}
	}
	return field.Name, true
}

func decodeStruct(path string, src Value, v reflect.Value) error {
	obj, ok := src.(*Object)
	if !ok {
		return pathError(path, "expected object, got %s", describe(src))
	}

	t := v.Type()
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		if name, ok := fieldName(fieldType); ok {
			fieldMap[strings.ToLower(name)] = v.Field(i)
		}
	}

	for key, item := range obj.All() {
		field, ok := fieldMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		if err := decodeValue(joinPath(path, key), item, field); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(path string, src Value, v reflect.Value) error {
	obj, ok := src.(*Object)
	if !ok {
		return pathError(path, "expected object, got %s", describe(src))
	}
	if v.Type().Key().Kind() != reflect.String {
		return pathError(path, "unsupported map key type: %v", v.Type().Key())
	}
	if v.IsNil() {
		v.Set(reflect.MakeMapWithSize(v.Type(), obj.Len()))
	}

	valueType := v.Type().Elem()
	for key, item := range obj.All() {
		value := reflect.New(valueType).Elem()
		if err := decodeValue(joinPath(path, key), item, value); err != nil {
			return err
		}
		v.SetMapIndex(reflect.ValueOf(key).Convert(v.Type().Key()), value)
	}
	return nil
}

func decodeSlice(path string, src Value, v reflect.Value) error {
	seq, ok := src.(*Sequence)
	if !ok {
		return pathError(path, "expected array, got %s", describe(src))
	}

	s := reflect.MakeSlice(v.Type(), 0, seq.Len())
	for i, item := range seq.All() {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := decodeValue(joinPath(path, strconv.Itoa(i)), item, elem); err != nil {
			return err
		}
		s = reflect.Append(s, elem)
	}
	v.Set(s)
	return nil
}

func decodeArray(path string, src Value, v reflect.Value) error {
	seq, ok := src.(*Sequence)
	if !ok {
		return pathError(path, "expected array, got %s", describe(src))
	}
	if seq.Len() > v.Len() {
		return pathError(path, "too many elements, limit %d", v.Len())
	}

	for i, item := range seq.All() {
		if err := decodeValue(joinPath(path, strconv.Itoa(i)), item, v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func setBasicValue(path string, src Value, v reflect.Value) error {
	switch src := src.(type) {
	case Number:
		return setNumber(path, float64(src), v)
	case String:
		return setString(path, string(src), v)
	}
	return pathError(path, "expected scalar, got %s", describe(src))
}

func setNumber(path string, f float64, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || v.OverflowInt(int64(f)) {
			return pathError(path, "invalid %s: %v", v.Type(), f)
		}
		v.SetInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || v.OverflowUint(uint64(f)) {
			return pathError(path, "invalid %s: %v", v.Type(), f)
		}
		v.SetUint(uint64(f))
	case reflect.Float32, reflect.Float64:
		if v.OverflowFloat(f) {
			return pathError(path, "invalid %s: %v", v.Type(), f)
		}
		v.SetFloat(f)
	case reflect.Bool:
		v.SetBool(f != 0)
	case reflect.String:
		v.SetString(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		return pathError(path, "unsupported type %s", v.Type())
	}
	return nil
}

func setString(path string, s string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return pathError(path, "%v", err)
		}
		if v.OverflowInt(i) {
			return pathError(path, "invalid %s: %v", v.Type(), i)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return pathError(path, "%v", err)
		}
		if v.OverflowUint(u) {
			return pathError(path, "invalid %s: %v", v.Type(), u)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return pathError(path, "%v", err)
		}
		if v.OverflowFloat(f) {
			return pathError(path, "invalid %s: %v", v.Type(), f)
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return pathError(path, "%v", err)
		}
		v.SetBool(b)
	default:
		return pathError(path, "unsupported type %s", v.Type())
	}
	return nil
}
