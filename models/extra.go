package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Documents keep the client fields they do not model in an inline Extra map,
// so a stored document round-trips as submitted. Extra never holds a key that
// collides with a modeled field; the bson inline encoder rejects those.

// fieldNames returns the lowercased json names of the struct fields of v.
func fieldNames(v interface{}) map[string]struct{} {
	t := reflect.TypeOf(v)
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = t.Field(i).Name
		}
		names[strings.ToLower(name)] = struct{}{}
	}
	return names
}

// decodeWithExtra decodes data into known and returns the leftover keys.
// Key matching is case-insensitive, like encoding/json.
func decodeWithExtra(data []byte, known interface{}, names map[string]struct{}) (map[string]interface{}, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	return withoutKeys(all, names), nil
}

// encodeWithExtra flattens extra next to the fields of known. Modeled fields win.
func encodeWithExtra(known interface{}, extra map[string]interface{}) ([]byte, error) {
	base, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return base, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := fields[k]; ok {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// withoutKeys copies m minus every key named in names. It returns nil when
// nothing is left.
func withoutKeys(m map[string]interface{}, names map[string]struct{}) map[string]interface{} {
	var out map[string]interface{}
	for k, v := range m {
		if _, ok := names[strings.ToLower(k)]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]interface{}, len(m))
		}
		out[k] = v
	}
	return out
}

// CopyExtra returns a shallow copy of an Extra map.
func CopyExtra(extra map[string]interface{}) map[string]interface{} {
	if extra == nil {
		return nil
	}
	out := make(map[string]interface{}, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}
