package pass

import (
	"encoding/json"
	"errors"
	"slices"
	"strconv"
)

// DefaultMaxDepth is the nesting limit applied when Decoder.MaxDepth is
// zero. Pipelines nest loops arbitrarily, so the limit is generous; it
// exists to fail cleanly on adversarial input instead of exhausting the
// stack. encoding/json's own scanner limit (10000) backstops anything
// beyond it.
const DefaultMaxDepth = 2048

// Decoder decodes pass documents. The zero value is ready to use and
// applies the strict defaults.
//
// Decoders hold no state across calls and are safe for concurrent use.
type Decoder struct {
	// MaxDepth bounds Pass nesting. Zero means DefaultMaxDepth.
	MaxDepth int

	// AllowUnknownFields skips unexpected sibling fields instead of
	// failing with a STRICT_SHAPE error. The default is strict, which
	// catches schema drift early; relax only when the producing schema
	// version explicitly allows additive fields.
	AllowUnknownFields bool
}

// Decode parses a pass document with the default strict decoder.
func Decode(data []byte) (Pass, error) {
	return (&Decoder{}).Decode(data)
}

// Decode parses a pass document. On failure it returns a *DecodeError
// whose Path names where in the tree decoding stopped; no partial tree is
// ever returned.
func (d *Decoder) Decode(data []byte) (Pass, error) {
	return d.state().decodePass(data, nil, 1)
}

// DecodeStandard parses a bare standard-pass payload, i.e. the object
// nested under the "StandardPass" field of a full document.
func (d *Decoder) DecodeStandard(data []byte) (StandardPass, error) {
	return d.state().decodeStandard(data, nil)
}

// state resolves the decoder configuration for one call, applying the
// DefaultMaxDepth fallback for every entry point.
func (d *Decoder) state() *decodeState {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &decodeState{maxDepth: maxDepth, lax: d.AllowUnknownFields}
}

// decodeState carries the per-call decode configuration. Decoding is a
// single recursive descent bounded by maxDepth.
type decodeState struct {
	maxDepth int
	lax      bool
}

func (st *decodeState) decodePass(data []byte, path []string, depth int) (Pass, error) {
	if depth > st.maxDepth {
		return nil, newDecodeError(ErrCodeDepthExceeded, path, "pass nesting exceeds maximum depth %d", st.maxDepth)
	}

	obj, err := st.object(data, path)
	if err != nil {
		return nil, err
	}

	classRaw, ok := obj["pass_class"]
	if !ok {
		return nil, newDecodeError(ErrCodeStrictShape, path, "missing required field %q", "pass_class")
	}
	var class string
	if err := json.Unmarshal(classRaw, &class); err != nil {
		return nil, newDecodeError(ErrCodeTypeMismatch, append(path, "pass_class"), "pass_class must be a string")
	}
	if !validClasses[Class(class)] {
		return nil, newDecodeError(ErrCodeUnknownVariant, append(path, "pass_class"), "unknown pass_class %q", class)
	}

	// The payload lives in a sibling field named after the discriminant.
	payload, ok := obj[class]
	if !ok {
		return nil, newDecodeError(ErrCodeTagMismatch, path, "pass_class is %q but no field of that name is present", class)
	}
	if !st.lax {
		for k := range obj {
			if k != "pass_class" && k != class {
				return nil, newDecodeError(ErrCodeStrictShape, append(path, k), "unexpected field %q", k)
			}
		}
	}

	vpath := append(path, class)
	switch Class(class) {
	case ClassStandard:
		sp, err := st.decodeStandard(payload, vpath)
		if err != nil {
			return nil, err
		}
		return Standard{Pass: sp}, nil
	case ClassSequence:
		return st.decodeSequence(payload, vpath, depth)
	case ClassRepeat:
		fields, err := st.loopFields(payload, vpath, nil)
		if err != nil {
			return nil, err
		}
		body, err := st.decodePass(fields["body"], append(vpath, "body"), depth+1)
		if err != nil {
			return nil, err
		}
		return Repeat{Body: body}, nil
	case ClassRepeatWithMetric:
		fields, err := st.loopFields(payload, vpath, []string{"metric"})
		if err != nil {
			return nil, err
		}
		var metric string
		if err := json.Unmarshal(fields["metric"], &metric); err != nil {
			return nil, newDecodeError(ErrCodeTypeMismatch, append(vpath, "metric"), "metric must be a string")
		}
		body, err := st.decodePass(fields["body"], append(vpath, "body"), depth+1)
		if err != nil {
			return nil, err
		}
		return RepeatWithMetric{Body: body, Metric: metric}, nil
	case ClassRepeatUntilSatisfied:
		fields, err := st.loopFields(payload, vpath, []string{"predicate"})
		if err != nil {
			return nil, err
		}
		body, err := st.decodePass(fields["body"], append(vpath, "body"), depth+1)
		if err != nil {
			return nil, err
		}
		// The predicate blob is kept verbatim, never parsed further.
		return RepeatUntilSatisfied{Body: body, Predicate: Predicate(fields["predicate"])}, nil
	}
	// Unreachable: class membership was checked above.
	return nil, newDecodeError(ErrCodeUnknownVariant, path, "unknown pass_class %q", class)
}

func (st *decodeState) decodeSequence(payload json.RawMessage, path []string, depth int) (Pass, error) {
	obj, err := st.object(payload, path)
	if err != nil {
		return nil, err
	}
	seqRaw, ok := obj["sequence"]
	if !ok {
		return nil, newDecodeError(ErrCodeStrictShape, path, "missing required field %q", "sequence")
	}
	if err := st.rejectExtras(obj, path, "sequence"); err != nil {
		return nil, err
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(seqRaw, &elems); err != nil {
		return nil, newDecodeError(ErrCodeTypeMismatch, append(path, "sequence"), "sequence must be an array")
	}

	seqPath := append(path, "sequence")
	passes := make([]Pass, len(elems))
	for i, elem := range elems {
		p, err := st.decodePass(elem, append(seqPath, strconv.Itoa(i)), depth+1)
		if err != nil {
			return nil, err
		}
		passes[i] = p
	}
	return Sequence{Sequence: passes}, nil
}

// loopFields validates the payload of a Repeat* variant: a "body" field
// plus the given extra required fields, nothing else.
func (st *decodeState) loopFields(payload json.RawMessage, path []string, extra []string) (map[string]json.RawMessage, error) {
	obj, err := st.object(payload, path)
	if err != nil {
		return nil, err
	}
	required := append([]string{"body"}, extra...)
	for _, req := range required {
		if _, ok := obj[req]; !ok {
			return nil, newDecodeError(ErrCodeStrictShape, path, "missing required field %q", req)
		}
	}
	if err := st.rejectExtras(obj, path, required...); err != nil {
		return nil, err
	}
	return obj, nil
}

func (st *decodeState) decodeStandard(payload json.RawMessage, path []string) (StandardPass, error) {
	obj, err := st.object(payload, path)
	if err != nil {
		return nil, err
	}
	nameRaw, ok := obj["name"]
	if !ok {
		return nil, newDecodeError(ErrCodeStrictShape, path, "missing required field %q", "name")
	}
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return nil, newDecodeError(ErrCodeTypeMismatch, append(path, "name"), "name must be a string")
	}

	ent, known := catalog[name]
	if !known {
		// Forward compatibility: newer catalogs may carry names this
		// package has never seen. Retain the raw payload so re-encoding
		// is lossless.
		fields := make(map[string]json.RawMessage, len(obj)-1)
		for k, v := range obj {
			if k != "name" {
				fields[k] = v
			}
		}
		return UnrecognizedPass{Name: name, Fields: fields}, nil
	}

	for _, req := range ent.required {
		if _, ok := obj[req]; !ok {
			return nil, newDecodeError(ErrCodeStrictShape, path, "missing required field %q for pass %q", req, name)
		}
	}
	if !st.lax {
		for k := range obj {
			if k == "name" {
				continue
			}
			if !slices.Contains(ent.required, k) && !slices.Contains(ent.optional, k) {
				return nil, newDecodeError(ErrCodeStrictShape, append(path, k), "unexpected field %q for pass %q", k, name)
			}
		}
	}

	sp, err := ent.decode(payload)
	if err != nil {
		return nil, st.wrapFieldError(err, path)
	}
	return sp, nil
}

// wrapFieldError converts an encoding/json unmarshal failure inside a
// known variant payload into a path-carrying DecodeError.
func (st *decodeState) wrapFieldError(err error, path []string) error {
	var de *DecodeError
	if errors.As(err, &de) {
		// Enum and qubit-mapping codecs report without document context;
		// prefix the path they were reached from.
		de.Path = append(append([]string(nil), path...), de.Path...)
		return de
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		p := path
		if ute.Field != "" {
			p = append(p, ute.Field)
		}
		return newDecodeError(ErrCodeTypeMismatch, p, "cannot decode JSON %s into %s", ute.Value, ute.Type)
	}
	return newDecodeError(ErrCodeTypeMismatch, path, "%s", err.Error())
}

func (st *decodeState) rejectExtras(obj map[string]json.RawMessage, path []string, allowed ...string) error {
	if st.lax {
		return nil
	}
	for k := range obj {
		if !slices.Contains(allowed, k) {
			return newDecodeError(ErrCodeStrictShape, append(path, k), "unexpected field %q", k)
		}
	}
	return nil
}

func (st *decodeState) object(data []byte, path []string) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, newDecodeError(ErrCodeTypeMismatch, path, "expected a JSON object")
	}
	if m == nil {
		return nil, newDecodeError(ErrCodeTypeMismatch, path, "expected a JSON object, got null")
	}
	return m, nil
}
