package pass

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTagsAgree(t *testing.T) {
	// Every catalog entry must decode to a pass whose wire tag is the key
	// it was registered under, from a payload built out of the entry's own
	// required fields.
	samples := map[string]json.RawMessage{
		"allow_swaps":                 json.RawMessage(`true`),
		"target_2qb_gate":             json.RawMessage(`"CX"`),
		"fidelity":                    json.RawMessage(`0.95`),
		"min_size":                    json.RawMessage(`2`),
		"euler_p":                     json.RawMessage(`"Rx"`),
		"euler_q":                     json.RawMessage(`"Rz"`),
		"euler_strict":                json.RawMessage(`true`),
		"cx_config":                   json.RawMessage(`"Snake"`),
		"pauli_synth_strat":           json.RawMessage(`"Sets"`),
		"allow_classical":             json.RawMessage(`true`),
		"create_all_qubits":           json.RawMessage(`false`),
		"delay_measures":              json.RawMessage(`true`),
		"directed":                    json.RawMessage(`false`),
		"n":                           json.RawMessage(`6`),
		"only_zeros":                  json.RawMessage(`false`),
		"basis_allowed":               json.RawMessage(`["CX", "TK1"]`),
		"basis_cx_replacement":        json.RawMessage(`{"name": "replacement"}`),
		"basis_tk1_replacement":       json.RawMessage(`"tk1fn"`),
		"basis_singleqs":              json.RawMessage(`["Rz", "H"]`),
		"always_squash_symbols":       json.RawMessage(`false`),
		"allow_partial":               json.RawMessage(`true`),
		"label":                       json.RawMessage(`"q"`),
		"relabel_classical_registers": json.RawMessage(`true`),
		"excluded_types":              json.RawMessage(`[]`),
		"excluded_opgroups":           json.RawMessage(`[]`),
		"architecture":                json.RawMessage(`{"nodes": 2, "links": [[0, 1]]}`),
		"placement":                   json.RawMessage(`{"type": "TrivialPlacement"}`),
		"routing_config":              json.RawMessage(`[{"name": "LexiRouteRoutingMethod"}]`),
		"qubit_map":                   json.RawMessage(`[[["q", [0]], ["q", [1]]]]`),
		"swap_replacement":            json.RawMessage(`{"name": "swap"}`),
		"x_circuit":                   json.RawMessage(`{"name": "x"}`),
		"discount_rate":               json.RawMessage(`0.5`),
		"depth_weight":                json.RawMessage(`0.25`),
		"max_lookahead":               json.RawMessage(`500.0`),
		"max_tqe_candidates":          json.RawMessage(`500.0`),
		"seed":                        json.RawMessage(`1.0`),
		"allow_zzphase":               json.RawMessage(`false`),
		"thread_timeout":              json.RawMessage(`100.0`),
		"only_reduce":                 json.RawMessage(`false`),
		"trials":                      json.RawMessage(`1.0`),
	}

	d := &Decoder{}
	for name, ent := range catalog {
		t.Run(name, func(t *testing.T) {
			payload := map[string]json.RawMessage{"name": json.RawMessage(`"` + name + `"`)}
			for _, req := range ent.required {
				sample, ok := samples[req]
				require.True(t, ok, "no sample value for required field %q", req)
				payload[req] = sample
			}
			raw, err := json.Marshal(payload)
			require.NoError(t, err)

			sp, err := d.DecodeStandard(raw)
			require.NoError(t, err)
			assert.Equal(t, name, Name(sp))
			_, unrecognized := sp.(UnrecognizedPass)
			assert.False(t, unrecognized)

			reencoded, err := EncodeStandard(sp)
			require.NoError(t, err)
			assert.JSONEq(t, string(raw), string(reencoded))
		})
	}
}

func TestEnumRejection(t *testing.T) {
	tests := []struct {
		name string
		data string
		into json.Unmarshaler
	}{
		{"rotation axis", `"Rw"`, new(RotationAxis)},
		{"rotation axis non-string", `3`, new(RotationAxis)},
		{"target gate", `"CZ"`, new(TargetTwoQubitGate)},
		{"cx config", `"Ring"`, new(CxConfig)},
		{"pauli strategy", `"Greedy"`, new(PauliSynthStrategy)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.into.UnmarshalJSON([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, IsTypeMismatch(err))
		})
	}
}

func TestEnumAcceptance(t *testing.T) {
	var axis RotationAxis
	require.NoError(t, json.Unmarshal([]byte(`"Ry"`), &axis))
	assert.Equal(t, AxisRy, axis)

	var strat PauliSynthStrategy
	require.NoError(t, json.Unmarshal([]byte(`"Pairwise"`), &strat))
	assert.Equal(t, PauliSynthPairwise, strat)
}

func TestQubitMappingShape(t *testing.T) {
	var m QubitMapping
	err := json.Unmarshal([]byte(`[["q", [0]]]`), &m)
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))

	err = json.Unmarshal([]byte(`{"from": 1, "to": 2}`), &m)
	require.Error(t, err)
	assert.True(t, IsTypeMismatch(err))

	require.NoError(t, json.Unmarshal([]byte(`[["q", [0]], ["q", [1]]]`), &m))
	assert.JSONEq(t, `["q", [0]]`, string(m.From))
}

func TestGreedyPauliSimpKeepsFloatFields(t *testing.T) {
	// Every numeric knob is a float on the wire, including ones that look
	// integral. Canonical form must keep the source token spelling.
	doc := []byte(`{
		"pass_class": "StandardPass",
		"StandardPass": {
			"name": "GreedyPauliSimp",
			"discount_rate": 0.7,
			"depth_weight": 0.3,
			"max_lookahead": 500.0,
			"max_tqe_candidates": 500.0,
			"seed": 13.0,
			"allow_zzphase": false,
			"thread_timeout": 100.0,
			"only_reduce": false,
			"trials": 1.0
		}
	}`)

	p, err := Decode(doc)
	require.NoError(t, err)
	gp := p.(Standard).Pass.(GreedyPauliSimp)
	assert.Equal(t, 0.7, gp.DiscountRate)
	assert.Equal(t, 500.0, gp.MaxLookahead)

	canonical, err := CanonicalizeDocument(doc)
	require.NoError(t, err)
	assert.Contains(t, string(canonical), `"max_lookahead":500.0`)
	assert.Contains(t, string(canonical), `"seed":13.0`)
}
