// Package codec maps stored documents to typed models and back.
//
// Store-native identifiers never leave this package: Decode turns every
// ObjectID found in a document into its hex string before building the model.
package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrShape reports a document or patch that does not fit the target type.
var ErrShape = errors.New("invalid document shape")

var timeType = reflect.TypeOf(time.Time{})

// Timestamp normalises t to what the store persists: UTC, millisecond precision.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// StringifyIDs returns a copy of v with every ObjectID, at any depth of nested
// documents and arrays, replaced by its hex string.
func StringifyIDs(v any) any {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.M:
		return stringifyMap(val)
	case map[string]any:
		return stringifyMap(val)
	case primitive.D:
		out := make(primitive.D, len(val))
		for i, e := range val {
			out[i] = primitive.E{Key: e.Key, Value: StringifyIDs(e.Value)}
		}
		return out
	case primitive.A:
		return stringifySlice(val)
	case []any:
		return stringifySlice(val)
	default:
		return v
	}
}

func stringifyMap(m map[string]any) primitive.M {
	out := make(primitive.M, len(m))
	for k, v := range m {
		out[k] = StringifyIDs(v)
	}
	return out
}

func stringifySlice(s []any) primitive.A {
	out := make(primitive.A, len(s))
	for i, v := range s {
		out[i] = StringifyIDs(v)
	}
	return out
}

// Decode builds a T from a stored document. Every non-pointer field without
// omitempty must be present, recursively through nested structs.
func Decode[T any](doc bson.M) (T, error) {
	var out T
	if doc == nil {
		return out, fmt.Errorf("%w: nil document", ErrShape)
	}

	clean := stringifyMap(doc)

	typ := reflect.TypeOf(out)
	if typ.Kind() != reflect.Struct {
		return out, fmt.Errorf("%w: decode target %s is not a struct", ErrShape, typ)
	}
	if err := checkRequired(clean, typ, ""); err != nil {
		return out, err
	}

	raw, err := bson.Marshal(clean)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return out, nil
}

func checkRequired(doc any, typ reflect.Type, path string) error {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitempty := bsonName(field)
		if name == "-" {
			continue
		}
		key := name
		if path != "" {
			key = path + "." + name
		}

		value, ok := lookup(doc, name)
		if !ok {
			if omitempty || field.Type.Kind() == reflect.Pointer {
				continue
			}
			return fmt.Errorf("%w: missing field %q", ErrShape, key)
		}

		if field.Type.Kind() == reflect.Struct && field.Type != timeType {
			if !isDocument(value) {
				return fmt.Errorf("%w: field %q must be a document", ErrShape, key)
			}
			if err := checkRequired(value, field.Type, key); err != nil {
				return err
			}
		}
	}
	return nil
}

func lookup(doc any, key string) (any, bool) {
	switch d := doc.(type) {
	case primitive.M:
		v, ok := d[key]
		return v, ok
	case map[string]any:
		v, ok := d[key]
		return v, ok
	case primitive.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}

func isDocument(v any) bool {
	switch v.(type) {
	case primitive.M, map[string]any, primitive.D:
		return true
	}
	return false
}

func bsonName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("bson")
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	omitempty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}

// EncodeNew turns a full model into an insertable document: the identifier is
// dropped and both timestamps are set to now.
func EncodeNew(v any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}

	ts := Timestamp(now)
	delete(doc, "_id")
	doc["created_at"] = ts
	doc["updated_at"] = ts
	return doc, nil
}

// EncodePatch builds a $set document from a struct of pointer fields. Nil
// fields are left out; set fields are written even when they hold a zero
// value. updated_at is always included.
func EncodePatch(patch any, now time.Time) (bson.M, error) {
	val := reflect.ValueOf(patch)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, fmt.Errorf("%w: nil patch", ErrShape)
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: patch %s is not a struct", ErrShape, val.Type())
	}

	set := bson.M{}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _ := bsonName(field)
		if name == "-" {
			continue
		}
		if field.Type.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("%w: patch field %s must be a pointer", ErrShape, field.Name)
		}

		fv := val.Field(i)
		if fv.IsNil() {
			continue
		}
		set[name] = fv.Elem().Interface()
	}

	set["updated_at"] = Timestamp(now)
	return set, nil
}
