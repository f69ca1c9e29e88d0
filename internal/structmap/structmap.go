// Package structmap provides a reflect-based convenience layer over the
// document tree: Marshal turns a Go struct into child nodes, Unmarshal
// populates a Go struct from them. It is built the way the teacher's own
// internal/mapper and internal/marshaler walk a Go value with reflect,
// adapted to the tree-of-nodes shape instead of an object-literal AST: a
// struct field becomes a child node named by its ndoc tag (or field name),
// a scalar field becomes that node's sole datum, a nested struct becomes a
// child node with its own children, and a slice becomes a run of sibling
// nodes sharing one id.
package structmap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ndoc-lang/ndoc/internal/docnode"
)

// Marshal appends child nodes to parent for the exported fields of v (a
// struct, or a pointer to one): one node per field, or one per element for
// a slice field. Fields tagged "-", empty omitempty fields and nil pointers
// add no node.
func Marshal(parent *docnode.Node[string], v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("ndoc: Marshal(non-struct %T)", v)
	}
	return marshalStruct(parent, rv)
}

func marshalStruct(parent *docnode.Node[string], rv reflect.Value) error {
	t := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tagName, opts := parseTag(field.Tag.Get("ndoc"))
		if tagName == "-" {
			continue
		}

		fv := rv.Field(i)
		if opts["omitempty"] && isEmptyValue(fv) {
			continue
		}

		name := field.Name
		if tagName != "" {
			name = tagName
		}
		if err := marshalField(parent, name, fv); err != nil {
			return fmt.Errorf("ndoc: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func marshalField(parent *docnode.Node[string], name string, fv reflect.Value) error {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil
		}
		fv = fv.Elem()
	}

	switch {
	case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8:
		for i := 0; i < fv.Len(); i++ {
			if err := marshalField(parent, name, fv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case fv.Kind() == reflect.Struct:
		child := &docnode.Node[string]{ID: name}
		parent.Children = append(parent.Children, child)
		return marshalStruct(child, fv)
	default:
		datum, err := marshalScalar(fv)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children, &docnode.Node[string]{
			ID:   name,
			Data: []string{datum},
		})
		return nil
	}
}

func marshalScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("ndoc: unsupported field type %s", v.Type())
	}
}

// Unmarshal populates v (a pointer to a struct) from node's children,
// matched by ndoc tag or field name: a repeated-sibling-id field must be a
// slice, a scalar field reads its matched child's first datum, and a
// struct field recurses into its matched child's own children.
func Unmarshal(node *docnode.Node[string], v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("ndoc: Unmarshal(non-pointer %T or nil)", v)
	}
	return unmarshalStruct(node, rv.Elem())
}

func unmarshalStruct(node *docnode.Node[string], rv reflect.Value) error {
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("ndoc: cannot unmarshal into non-struct %s", rv.Type())
	}

	t := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tagName, _ := parseTag(field.Tag.Get("ndoc"))
		if tagName == "-" {
			continue
		}
		name := field.Name
		if tagName != "" {
			name = tagName
		}
		fv := rv.Field(i)

		if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 {
			var matches []*docnode.Node[string]
			for c := range node.All(name) {
				matches = append(matches, c)
			}
			if len(matches) == 0 {
				continue
			}
			slice := reflect.MakeSlice(fv.Type(), len(matches), len(matches))
			for j, c := range matches {
				if err := unmarshalField(c, slice.Index(j)); err != nil {
					return fmt.Errorf("ndoc: field %s[%d]: %w", field.Name, j, err)
				}
			}
			fv.Set(slice)
			continue
		}

		child := node.Find(name)
		if child == nil {
			continue
		}
		if err := unmarshalField(child, fv); err != nil {
			return fmt.Errorf("ndoc: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func unmarshalField(child *docnode.Node[string], fv reflect.Value) error {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return unmarshalField(child, fv.Elem())
	}
	if fv.Kind() == reflect.Struct {
		return unmarshalStruct(child, fv)
	}
	datum, ok := child.DataAt(0)
	if !ok {
		return nil
	}
	return setScalar(fv, datum)
}

func setScalar(fv reflect.Value, datum string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(datum)
	case reflect.Bool:
		b, err := strconv.ParseBool(datum)
		if err != nil {
			return fmt.Errorf("ndoc: %q is not a valid bool", datum)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(datum, 10, 64)
		if err != nil {
			return fmt.Errorf("ndoc: %q is not a valid integer", datum)
		}
		if fv.OverflowInt(n) {
			return fmt.Errorf("ndoc: %d overflows %s", n, fv.Type())
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(datum, 10, 64)
		if err != nil {
			return fmt.Errorf("ndoc: %q is not a valid unsigned integer", datum)
		}
		if fv.OverflowUint(n) {
			return fmt.Errorf("ndoc: %d overflows %s", n, fv.Type())
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(datum, 64)
		if err != nil {
			return fmt.Errorf("ndoc: %q is not a valid float", datum)
		}
		if fv.OverflowFloat(f) {
			return fmt.Errorf("ndoc: %g overflows %s", f, fv.Type())
		}
		fv.SetFloat(f)
	default:
		return fmt.Errorf("ndoc: cannot unmarshal into %s", fv.Type())
	}
	return nil
}

// parseTag splits an ndoc struct tag into its name and its options.
func parseTag(tag string) (string, map[string]bool) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	opts := make(map[string]bool, len(parts)-1)
	for _, p := range parts[1:] {
		opts[strings.TrimSpace(p)] = true
	}
	return parts[0], opts
}

// isEmptyValue reports whether v is the zero value for its kind, matching
// encoding/json's definition of "empty" for omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
