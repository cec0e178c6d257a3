package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Query builds a URL query string that keeps insertion order. Nil values,
// including nil pointers, are skipped; everything else is stringified.
type Query struct {
	keys []string
	vals []string
}

// NewQuery returns an empty Query.
func NewQuery() *Query { return &Query{} }

// Add appends key=v unless v is nil. Pointers are dereferenced. Strings,
// integers, floats, booleans and types built on them are supported;
// other values go through fmt.
func (q *Query) Add(key string, v any) *Query {
	s, ok := stringify(v)
	if !ok {
		return q
	}
	q.keys = append(q.keys, key)
	q.vals = append(q.vals, s)
	return q
}

// AddNonZero is Add for values that should be sent only when non-empty and
// non-zero.
func (q *Query) AddNonZero(key string, v any) *Query {
	if v == nil {
		return q
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return q
		}
		rv = rv.Elem()
	}
	if rv.IsZero() {
		return q
	}
	return q.Add(key, rv.Interface())
}

// Len is the number of parameters.
func (q *Query) Len() int {
	if q == nil {
		return 0
	}
	return len(q.keys)
}

// Encode returns "?k=v&..." or "" when the query is empty.
func (q *Query) Encode() string {
	if q.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range q.keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.vals[i]))
	}
	return b.String()
}

func stringify(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return fmt.Sprint(rv.Interface()), true
}

// Ptr returns a pointer to v. It is handy for filling optional filter
// fields: Ptr(0) sends offset=0 where a nil pointer omits it.
func Ptr[T any](v T) *T { return &v }
