// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query builds URL query strings for the dictionary service API.
//
// List parameters are sent as repeated keys ("ids=a&ids=b"), which is how the
// service binds collection parameters. Empty values and empty lists are
// omitted so that "absent" and "empty" look the same on the wire.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Builder accumulates query parameters.
type Builder struct {
	values url.Values
}

// New returns an empty [Builder].
func New() *Builder {
	return &Builder{values: url.Values{}}
}

// String adds value under key unless it is empty.
func (b *Builder) String(key, value string) *Builder {
	if value != "" {
		b.values.Add(key, value)
	}
	return b
}

// Strings adds every non-empty value under key.
func (b *Builder) Strings(key string, values []string) *Builder {
	for _, v := range values {
		b.String(key, v)
	}
	return b
}

// Int adds an integer parameter.
func (b *Builder) Int(key string, value int) *Builder {
	b.values.Set(key, strconv.Itoa(value))
	return b
}

// Bool adds a boolean parameter.
func (b *Builder) Bool(key string, value bool) *Builder {
	b.values.Set(key, strconv.FormatBool(value))
	return b
}

// Values returns the accumulated parameters.
func (b *Builder) Values() url.Values {
	return b.values
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Values collects a list parameter that may arrive either as repeated keys
// or as a comma-separated value.
func Values(values url.Values, key string) []string {
	var res []string
	for _, raw := range values[key] {
		res = append(res, StringSlice(raw)...)
	}
	return res
}

// IntOr returns the integer value of key, or def when it is absent or malformed.
func IntOr(values url.Values, key string, def int) int {
	raw := values.Get(key)
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return n
}

// Bool returns the boolean value of key; absent or malformed values are false.
func Bool(values url.Values, key string) bool {
	v, _ := strconv.ParseBool(values.Get(key))
	return v
}
