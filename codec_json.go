package fsesl

import (
	"encoding/json"
	"sort"
	"strconv"
)

// parseEventJSON parses the text/event-json payload: a flat JSON object
// whose members are string-valued headers, except the special "_body"
// key which becomes the event body. Numeric and boolean member values
// are stringified so the header's value type stays string uniformly
// (spec §4.1).
func parseEventJSON(payload []byte) (*Event, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errProtocol("invalid event-json payload: %v", err)
	}

	// json.Unmarshal into a map loses key order; FreeSWITCH's own JSON
	// serializer does not guarantee an order contract either, so sort
	// for a deterministic, reproducible header order instead of relying
	// on Go's randomized map iteration.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := &Event{}
	for _, k := range keys {
		if k == "_body" {
			var body string
			if err := json.Unmarshal(raw[k], &body); err != nil {
				return nil, errProtocol("invalid _body value in event-json payload: %v", err)
			}
			e.body = []byte(body)
			continue
		}
		val, err := jsonValueToHeaderString(raw[k])
		if err != nil {
			return nil, err
		}
		e.headers = append(e.headers, Header{Name: k, Value: val})
	}
	return e, nil
}

func jsonValueToHeaderString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	if string(raw) == "null" {
		return "", nil
	}
	return "", errProtocol("unsupported JSON value in event-json payload: %s", raw)
}

// ToJSON serializes the event to its text/event-json payload form: one
// string-valued member per header, plus "_body" when a body is present.
func (e *Event) ToJSON() ([]byte, error) {
	m := make(map[string]string, len(e.headers)+1)
	for _, h := range e.headers {
		m[h.Name] = h.Value
	}
	if len(e.body) > 0 {
		m["_body"] = string(e.body)
	}
	return json.Marshal(m)
}
