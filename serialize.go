package conekta

import (
	"encoding/json"
	"reflect"
	"strings"
)

// jsonFieldNames collects the wire names of a struct's json-tagged fields.
func jsonFieldNames(v interface{}) map[string]struct{} {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			name = t.Field(i).Name
		}
		names[name] = struct{}{}
	}
	return names
}

// decodeWithExtra unmarshals data into v and returns whatever top-level
// fields v carries no json tag for. Unknown fields never fail the decode;
// they are preserved raw so the resource re-encodes losslessly.
func decodeWithExtra(data []byte, v interface{}) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	known := jsonFieldNames(v)
	var extra map[string]json.RawMessage
	for k, raw := range all {
		if _, ok := known[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[k] = raw
	}
	return extra, nil
}

// encodeWithExtra marshals v and splices extra back into the object.
// Known fields win on key collisions.
func encodeWithExtra(v interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	for k, raw := range extra {
		if _, ok := all[k]; ok {
			continue
		}
		all[k] = raw
	}
	return json.Marshal(all)
}
