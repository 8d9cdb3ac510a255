// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
)

// Field is a settable struct field of a config object.
type Field struct {

	// Field is the reflect struct field.
	Field reflect.StructField

	// Value is the settable value of the field.
	Value reflect.Value

	// Name is the nested name of the field as it appears in code (eg: A.B).
	Name string

	// Names are the flag names of the field, in kebab-case.
	// They default to the field name and its nested name,
	// and are set by the flag struct tag if it is present.
	Names []string
}

// Fields are the fields of a config object, in struct order.
type Fields []*Field

// FlagName returns the kebab-case flag name for the given name,
// which may be in any case, with nesting dots kept.
func FlagName(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = strcase.ToKebab(p)
	}
	return strings.Join(parts, ".")
}

// Lookup returns the field with the given flag name, or nil.
func (fs Fields) Lookup(name string) *Field {
	name = FlagName(name)
	for _, f := range fs {
		if slices.Contains(f.Names, name) {
			return f
		}
	}
	return nil
}

// AddFields returns the fields of the given pointer to a struct,
// recursing into struct fields. Fields of kinds that cannot be
// set from a string are skipped, as are fields tagged flag:"-". If two fields nested in different
// structs have the same name, neither gets the unqualified name.
func AddFields(cfg any) (Fields, error) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("cli: config must be a pointer to a struct, not %T", cfg)
	}
	var fs Fields
	used := map[string]*Field{}
	conflicts := map[string]bool{}
	if err := addFields(v.Elem(), "", &fs, used, conflicts); err != nil {
		return nil, err
	}
	for _, f := range fs {
		f.Names = slices.DeleteFunc(f.Names, func(n string) bool { return conflicts[n] })
	}
	return fs, nil
}

func addFields(v reflect.Value, path string, fs *Fields, used map[string]*Field, conflicts map[string]bool) error {
	typ := v.Type()
	for i, n := 0, typ.NumField(); i < n; i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		name := sf.Name
		if path != "" {
			name = path + "." + name
		}
		if sf.Type.Kind() == reflect.Struct {
			if err := addFields(fv, name, fs, used, conflicts); err != nil {
				return err
			}
			continue
		}
		if !settable(sf.Type) || sf.Tag.Get("flag") == "-" {
			continue
		}
		f := &Field{Field: sf, Value: fv, Name: name}
		tagged := false
		if tag, ok := sf.Tag.Lookup("flag"); ok && tag != "" {
			tagged = true
			for _, n := range strings.Split(tag, ",") {
				f.Names = append(f.Names, FlagName(strings.TrimSpace(n)))
			}
		} else {
			f.Names = append(f.Names, FlagName(sf.Name))
			if path != "" {
				f.Names = append(f.Names, FlagName(name))
			}
		}
		for _, n := range f.Names {
			of, has := used[n]
			if !has {
				used[n] = f
				continue
			}
			_, otagged := of.Field.Tag.Lookup("flag")
			if tagged || otagged || !strings.Contains(of.Name, ".") || path == "" {
				return fmt.Errorf("cli: fields %q and %q have the same flag name %q", of.Name, f.Name, n)
			}
			conflicts[n] = true
		}
		*fs = append(*fs, f)
	}
	return nil
}

// settable returns whether values of the given type can be set from a string.
func settable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.String
	}
	return false
}
