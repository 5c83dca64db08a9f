// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Corduroy Authors

package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/cryptoblk/corduroy/internal/translate"
)

var (
	// ErrNotEnum indicates a value whose type does not implement Enum.
	ErrNotEnum = errors.New("not an enum type")

	// ErrNotRecord indicates a value that is not a struct.
	ErrNotRecord = errors.New("not a record type")

	// ErrUnsupportedType indicates a field type with no semantic equivalent.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// Enum is implemented by Go types that stand for an enumeration.
// Values lists the constant names in declaration order.
type Enum interface {
	Values() []string
}

// Owned is implemented by record types that declare their owning parties.
// Each entry is an expression over the record's own field names.
type Owned interface {
	Participants() []string
}

// TagName is the struct tag used to rename (or, with "-", skip) a field.
const TagName = "ledger"

var (
	timeType  = reflect.TypeOf(time.Time{})
	enumType  = reflect.TypeOf((*Enum)(nil)).Elem()
	ownedType = reflect.TypeOf((*Owned)(nil)).Elem()
)

// Describe introspects every enum value and record value in order.
// The first failure aborts the whole call.
func Describe(enums, records []any) (*translate.Model, error) {
	enumDescs := make([]translate.EnumDescriptor, 0, len(enums))
	for _, v := range enums {
		e, err := DescribeEnum(v)
		if err != nil {
			return nil, err
		}
		enumDescs = append(enumDescs, e)
	}

	recordDescs := make([]translate.RecordDescriptor, 0, len(records))
	for _, v := range records {
		r, err := DescribeRecord(v)
		if err != nil {
			return nil, err
		}
		recordDescs = append(recordDescs, r)
	}

	return Assemble(enumDescs, recordDescs)
}

// DescribeEnum builds an EnumDescriptor from a value whose type implements Enum.
// Only the type of v matters: a nil pointer such as (*Status)(nil) is accepted.
func DescribeEnum(v any) (translate.EnumDescriptor, error) {
	if v == nil {
		return translate.EnumDescriptor{}, fmt.Errorf("<nil>: %w", ErrNotEnum)
	}
	t := indirect(reflect.TypeOf(v))
	impl, ok := implementation(t, enumType)
	if !ok {
		return translate.EnumDescriptor{}, fmt.Errorf("%T: %w", v, ErrNotEnum)
	}
	return BuildEnum(t.Name(), impl.(Enum).Values())
}

// DescribeRecord builds a RecordDescriptor from a struct value or pointer.
// Exported fields become data fields in declaration order; the participants
// come from the Owned implementation of the type or its pointer type, so
// (*Deal)(nil) describes Deal.
func DescribeRecord(v any) (translate.RecordDescriptor, error) {
	if v == nil {
		return translate.RecordDescriptor{}, fmt.Errorf("<nil>: %w", ErrNotRecord)
	}
	t := indirect(reflect.TypeOf(v))
	if t.Kind() != reflect.Struct {
		return translate.RecordDescriptor{}, fmt.Errorf("%s: %w", t, ErrNotRecord)
	}

	members := make([]Member, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := fieldName(sf)
		if name == "" {
			continue
		}
		typ, err := semanticType(sf.Type)
		if err != nil {
			return translate.RecordDescriptor{}, fmt.Errorf("record %q field %q: %w", t.Name(), name, err)
		}
		members = append(members, Member{Name: name, Type: typ})
	}

	return BuildRecord(t.Name(), members, participants(t))
}

// participants reads the companion slot, returning nil when the type has none.
func participants(t reflect.Type) []string {
	impl, ok := implementation(t, ownedType)
	if !ok {
		return nil
	}
	if p := impl.(Owned).Participants(); p != nil {
		return p
	}
	return []string{}
}

// implementation returns a fresh value of t or *t implementing iface, so
// methods never run on a caller's nil pointer.
func implementation(t, iface reflect.Type) (any, bool) {
	switch {
	case t.Implements(iface):
		return reflect.Zero(t).Interface(), true
	case reflect.PointerTo(t).Implements(iface):
		return reflect.New(t).Interface(), true
	default:
		return nil, false
	}
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// fieldName returns the tag name, or the Go name in lower camel case.
// An empty result means the field is skipped.
func fieldName(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup(TagName)
	if ok {
		tag, _, _ = strings.Cut(tag, ",")
		if tag == "-" {
			return ""
		}
		if tag != "" {
			return tag
		}
	}
	return lowerCamel(sf.Name)
}

// lowerCamel lowercases the leading upper-case run of a Go identifier,
// keeping the last capital when it starts the next word: "URLPath" -> "urlPath".
func lowerCamel(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// semanticType renders a Go type as a semantic type string. Named types keep
// their package qualification; ParseTypeRef shortens it.
func semanticType(t reflect.Type) (string, error) {
	t = indirect(t)
	if t == timeType {
		return "Instant", nil
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		elem, err := semanticType(t.Elem())
		if err != nil {
			return "", err
		}
		if t.Kind() == reflect.Slice {
			return "List<" + elem + ">", nil
		}
		return "Array<" + elem + ">", nil
	}

	switch t.Kind() {
	case reflect.Map, reflect.Interface, reflect.Func, reflect.Chan,
		reflect.UnsafePointer, reflect.Uintptr, reflect.Complex64, reflect.Complex128:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	case reflect.Struct:
		if t.Name() == "" {
			return "", fmt.Errorf("%w: anonymous struct", ErrUnsupportedType)
		}
	}

	// Instantiated generic types render as Box[pkg.Arg] and have no short name.
	if strings.ContainsRune(t.Name(), '[') {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}

	if t.Name() != "" && t.PkgPath() != "" {
		return t.String(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return "String", nil
	case reflect.Bool:
		return "Boolean", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return "Int", nil
	case reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return "Long", nil
	case reflect.Float32:
		return "Float", nil
	case reflect.Float64:
		return "Double", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}
