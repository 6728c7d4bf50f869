package pass

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a pass tree to its wire document. Key order within
// objects is not part of the contract; key set, nesting and values are.
//
// Encoding a tree obtained from Decode, or built from the types in this
// package, cannot fail. Errors surface only for malformed hand-built
// trees (a nil Pass, or an opaque blob holding invalid JSON).
func Encode(p Pass) ([]byte, error) {
	return encodePass(p)
}

func (p Standard) MarshalJSON() ([]byte, error)             { return encodePass(p) }
func (p Sequence) MarshalJSON() ([]byte, error)             { return encodePass(p) }
func (p Repeat) MarshalJSON() ([]byte, error)               { return encodePass(p) }
func (p RepeatWithMetric) MarshalJSON() ([]byte, error)     { return encodePass(p) }
func (p RepeatUntilSatisfied) MarshalJSON() ([]byte, error) { return encodePass(p) }

func encodePass(p Pass) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pass: cannot encode a nil pass")
	}

	var (
		payload json.RawMessage
		err     error
	)
	switch v := p.(type) {
	case Standard:
		payload, err = EncodeStandard(v.Pass)
	case Sequence:
		payload, err = encodeSequence(v)
	case Repeat:
		payload, err = encodeLoop(v.Body, nil)
	case RepeatWithMetric:
		var metric json.RawMessage
		metric, err = json.Marshal(v.Metric)
		if err == nil {
			payload, err = encodeLoop(v.Body, map[string]json.RawMessage{"metric": metric})
		}
	case RepeatUntilSatisfied:
		predicate := v.Predicate
		if predicate == nil {
			predicate = json.RawMessage("null")
		}
		payload, err = encodeLoop(v.Body, map[string]json.RawMessage{"predicate": predicate})
	default:
		err = fmt.Errorf("pass: unsupported pass type %T", p)
	}
	if err != nil {
		return nil, err
	}

	class := string(p.Class())
	tag, err := json.Marshal(class)
	if err != nil {
		return nil, err
	}
	// Both halves of the hybrid tag: the adjacent pass_class field and the
	// payload field named after the discriminant itself.
	return json.Marshal(map[string]json.RawMessage{
		"pass_class": tag,
		class:        payload,
	})
}

func encodeSequence(v Sequence) (json.RawMessage, error) {
	elems := make([]json.RawMessage, len(v.Sequence))
	for i, child := range v.Sequence {
		b, err := encodePass(child)
		if err != nil {
			return nil, fmt.Errorf("sequence[%d]: %w", i, err)
		}
		elems[i] = b
	}
	seq, err := json.Marshal(elems)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{"sequence": seq})
}

func encodeLoop(body Pass, extra map[string]json.RawMessage) (json.RawMessage, error) {
	b, err := encodePass(body)
	if err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	fields := map[string]json.RawMessage{"body": b}
	for k, v := range extra {
		fields[k] = v
	}
	return json.Marshal(fields)
}

// EncodeStandard serializes a standard pass to its adjacently tagged
// payload object: the "name" tag plus the variant's fields, flattened.
func EncodeStandard(sp StandardPass) (json.RawMessage, error) {
	if sp == nil {
		return nil, fmt.Errorf("pass: cannot encode a nil standard pass")
	}
	tag, err := json.Marshal(sp.passName())
	if err != nil {
		return nil, err
	}

	if u, ok := sp.(UnrecognizedPass); ok {
		fields := make(map[string]json.RawMessage, len(u.Fields)+1)
		for k, v := range u.Fields {
			fields[k] = v
		}
		fields["name"] = tag
		return json.Marshal(fields)
	}

	// Marshal the variant struct, then splice the tag in alongside its
	// fields. Optional fields are pointers with omitempty, so absence
	// means no key at all rather than null.
	b, err := json.Marshal(sp)
	if err != nil {
		return nil, fmt.Errorf("pass %q: %w", sp.passName(), err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("pass %q: %w", sp.passName(), err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, 1)
	}
	fields["name"] = tag
	return json.Marshal(fields)
}
