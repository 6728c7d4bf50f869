package pass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeDocumentBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"null", `null`, `null`},
		{"bool", `true`, `true`},
		{"int", `42`, `42`},
		{"string", `"hello"`, `"hello"`},
		{"empty array", `[ ]`, `[]`},
		{"empty object", `{ }`, `{}`},
		{"whitespace stripped", "{\n  \"a\": [1, 2,\t3]\n}", `{"a":[1,2,3]}`},
		{"sorted keys", `{"zebra": 1, "alpha": 2, "beta": 3}`, `{"alpha":2,"beta":3,"zebra":1}`},
		{"nested sorted keys", `{"z": {"b": 1, "a": 2}, "a": 3}`, `{"a":3,"z":{"a":2,"b":1}}`},
		{"uppercase sorts before lowercase", `{"pass_class": 1, "StandardPass": 2}`, `{"StandardPass":2,"pass_class":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CanonicalizeDocument([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestCanonicalizeDocumentNumberTokens(t *testing.T) {
	// Number tokens pass through verbatim. 2.0 stays 2.0, exponents keep
	// their spelling, and precision never round-trips through float64.
	tests := []struct {
		name  string
		token string
	}{
		{"whole float", `2.0`},
		{"exponent", `1e10`},
		{"negative exponent", `-2.5e-3`},
		{"high precision", `0.1000000000000000055511151231257827`},
		{"big integer", `9223372036854775807`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CanonicalizeDocument([]byte(`{"v": ` + tt.token + `}`))
			require.NoError(t, err)
			assert.Equal(t, `{"v":`+tt.token+`}`, string(result))
		})
	}
}

func TestCanonicalizeDocumentNoHTMLEscape(t *testing.T) {
	result, err := CanonicalizeDocument([]byte(`{"expr": "a < b && c > d"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"expr":"a < b && c > d"}`, string(result))
}

func TestCanonicalizeDocumentUTF16KeyOrdering(t *testing.T) {
	// U+10000 encodes as the surrogate pair 0xD800 0xDC00 in UTF-16, which
	// sorts before U+E000 despite being a larger code point.
	doc := `{"` + "" + `": 1, "𐀀": 2}`
	result, err := CanonicalizeDocument([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, `{"𐀀":2,"`+""+`":1}`, string(result))
}

func TestCanonicalizeDocumentNFCNormalization(t *testing.T) {
	// e + combining acute (NFD) collapses to the precomposed form.
	decomposed := "é"
	result, err := CanonicalizeDocument([]byte(`{"v": "` + decomposed + `"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"v":"é"}`, string(result))
}

func TestCanonicalizeDocumentRejectsInvalidJSON(t *testing.T) {
	_, err := CanonicalizeDocument([]byte(`{"unterminated": `))
	require.Error(t, err)
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	p := Standard{Pass: CliffordSimp{AllowSwaps: true, Target2QbGate: TargetCX}}

	first, err := MarshalCanonical(p)
	require.NoError(t, err)
	assert.Equal(t, `{"StandardPass":{"allow_swaps":true,"name":"CliffordSimp","target_2qb_gate":"CX"},"pass_class":"StandardPass"}`, string(first))

	// Map iteration order in Encode must never leak into canonical bytes.
	for i := 0; i < 16; i++ {
		again, err := MarshalCanonical(p)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
}

func TestPassIDIgnoresFormatting(t *testing.T) {
	pretty := []byte(`{
		"pass_class": "StandardPass",
		"StandardPass": {
			"name": "CliffordSimp",
			"allow_swaps": true,
			"target_2qb_gate": "CX"
		}
	}`)
	compact := []byte(`{"StandardPass":{"allow_swaps":true,"name":"CliffordSimp","target_2qb_gate":"CX"},"pass_class":"StandardPass"}`)

	id1, err := DocumentID(pretty)
	require.NoError(t, err)
	id2, err := DocumentID(compact)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64)

	p, err := Decode(pretty)
	require.NoError(t, err)
	id3, err := PassID(p)
	require.NoError(t, err)
	assert.Equal(t, id1, id3)
}

func TestDocumentIDKeepsNumberSpelling(t *testing.T) {
	// Number tokens are part of document identity: 13.0 and 13 canonicalize
	// differently, and Encode re-emits floats through Go's formatter, so a
	// decode/encode cycle can change a document's DocumentID. Tree identity
	// across that cycle is PassID's contract.
	spelled := []byte(`{
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

	decoded, err := Decode(spelled)
	require.NoError(t, err)
	reencoded, err := Encode(decoded)
	require.NoError(t, err)

	idSpelled, err := DocumentID(spelled)
	require.NoError(t, err)
	idReencoded, err := DocumentID(reencoded)
	require.NoError(t, err)
	assert.NotEqual(t, idSpelled, idReencoded)

	// Whitespace and key order alone never change it.
	reformatted := []byte(`{"StandardPass": {"allow_zzphase": false, "depth_weight": 0.3,
		"discount_rate": 0.7, "max_lookahead": 500.0, "max_tqe_candidates": 500.0,
		"name": "GreedyPauliSimp", "only_reduce": false, "seed": 13.0,
		"thread_timeout": 100.0, "trials": 1.0}, "pass_class": "StandardPass"}`)
	idReformatted, err := DocumentID(reformatted)
	require.NoError(t, err)
	assert.Equal(t, idSpelled, idReformatted)

	// Both spellings decode to the same tree, so PassID agrees.
	again, err := Decode(reencoded)
	require.NoError(t, err)
	pid1, err := PassID(decoded)
	require.NoError(t, err)
	pid2, err := PassID(again)
	require.NoError(t, err)
	assert.Equal(t, pid1, pid2)
}

func TestPassIDDistinguishesContent(t *testing.T) {
	id1, err := PassID(Standard{Pass: CliffordSimp{AllowSwaps: true, Target2QbGate: TargetCX}})
	require.NoError(t, err)
	id2, err := PassID(Standard{Pass: CliffordSimp{AllowSwaps: false, Target2QbGate: TargetCX}})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}
