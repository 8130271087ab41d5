package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"FoodShare-Server/domain"
)

// The allowed key set for a request body is derived from the json tags of its
// schema struct, so field coverage is decided by the type, not a hand-kept
// list. Keys are checked in document order and the first unknown one aborts
// the whole request before anything is written.

var (
	fieldSetMu    sync.RWMutex
	fieldSetCache = map[reflect.Type]map[string]struct{}{}
)

func allowedFields(schema interface{}) map[string]struct{} {
	t := reflect.TypeOf(schema)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	fieldSetMu.RLock()
	set, ok := fieldSetCache[t]
	fieldSetMu.RUnlock()
	if ok {
		return set
	}

	set = make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name := strings.Split(tag, ",")[0]
		if name == "" || name == "-" {
			continue
		}
		set[name] = struct{}{}
	}

	fieldSetMu.Lock()
	fieldSetCache[t] = set
	fieldSetMu.Unlock()
	return set
}

// DecodeStrict unmarshals body into dst after verifying every top-level key
// against dst's schema. Returns *domain.DisallowedFieldError naming the first
// offending key.
func DecodeStrict(body []byte, dst interface{}) error {
	if err := checkFields(body, allowedFields(dst)); err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// DecodeStrictMap verifies body against the schema's field set and returns
// only the keys the client actually sent, preserving partial-update
// semantics: absent fields stay untouched.
func DecodeStrictMap(body []byte, schema interface{}) (map[string]interface{}, error) {
	if err := checkFields(body, allowedFields(schema)); err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func checkFields(body []byte, allowed map[string]struct{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("invalid request body: expected a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("invalid request body: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("invalid request body: expected an object key")
		}
		if _, ok := allowed[key]; !ok {
			return &domain.DisallowedFieldError{Field: key}
		}
		if err := skipValue(dec); err != nil {
			return fmt.Errorf("invalid request body: %w", err)
		}
	}
	return nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
