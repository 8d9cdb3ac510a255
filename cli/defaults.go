// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/lsystem/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	fs, err := AddFields(cfg)
	if err != nil {
		return errors.Log(err)
	}
	var errs []error
	for _, f := range fs {
		def, ok := f.Field.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetString(f.Value, def); err != nil {
			errs = append(errs, fmt.Errorf("cli.SetFromDefaults: field %s: %w", f.Name, err))
		}
	}
	return errors.Log(errors.Join(errs...))
}

// SetString sets the given settable value from the given string,
// parsing it according to the kind of the value. A string slice
// is set from a comma-separated list.
func SetString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot set %s from a string", v.Type())
		}
		var list []string
		if s != "" {
			list = strings.Split(s, ",")
		}
		v.Set(reflect.ValueOf(list).Convert(v.Type()))
	default:
		return fmt.Errorf("cannot set %s from a string", v.Type())
	}
	return nil
}
