package passfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmill/passkit/pass"
)

func writeDescriptor(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileJSON(t *testing.T) {
	path := writeDescriptor(t, "pipeline.json", `{
		"pass_class": "StandardPass",
		"StandardPass": {"name": "CliffordSimp", "allow_swaps": true, "target_2qb_gate": "CX"}
	}`)

	p, err := LoadFile(path)
	require.NoError(t, err)
	std, ok := p.(pass.Standard)
	require.True(t, ok)
	assert.Equal(t, pass.CliffordSimp{AllowSwaps: true, Target2QbGate: pass.TargetCX}, std.Pass)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeDescriptor(t, "pipeline.yaml", `
pass_class: SequencePass
SequencePass:
  sequence:
    - pass_class: StandardPass
      StandardPass:
        name: RemoveRedundancies
    - pass_class: RepeatPass
      RepeatPass:
        body:
          pass_class: StandardPass
          StandardPass:
            name: CliffordSimp
            allow_swaps: false
            target_2qb_gate: TK2
`)

	p, err := LoadFile(path)
	require.NoError(t, err)
	seq, ok := p.(pass.Sequence)
	require.True(t, ok)
	require.Len(t, seq.Sequence, 2)
	rep, ok := seq.Sequence[1].(pass.Repeat)
	require.True(t, ok)
	body := rep.Body.(pass.Standard)
	assert.Equal(t, pass.CliffordSimp{Target2QbGate: pass.TargetTK2}, body.Pass)
}

func TestLoadYAMLEnforcesSameShapeRules(t *testing.T) {
	// YAML is only a carrier; strict shape violations surface identically.
	l := &Loader{}
	doc := `
pass_class: StandardPass
StandardPass:
  name: RemoveRedundancies
  surplus: 1
`
	_, err := l.Load(strings.NewReader(doc), FormatYAML)
	require.Error(t, err)
	assert.True(t, pass.IsStrictShape(err))
}

func TestLoadRespectsDecoderConfig(t *testing.T) {
	doc := `
pass_class: StandardPass
StandardPass:
  name: RemoveRedundancies
  surplus: 1
`
	l := &Loader{Decoder: pass.Decoder{AllowUnknownFields: true}}
	p, err := l.Load(strings.NewReader(doc), FormatYAML)
	require.NoError(t, err)
	assert.IsType(t, pass.Standard{}, p)
}

func TestJSONAndYAMLCarriersAgree(t *testing.T) {
	jsonPath := writeDescriptor(t, "pipeline.json", `{
		"pass_class": "RepeatPass",
		"RepeatPass": {"body": {
			"pass_class": "StandardPass",
			"StandardPass": {"name": "CliffordSimp", "allow_swaps": true, "target_2qb_gate": "CX"}
		}}
	}`)
	yamlPath := writeDescriptor(t, "pipeline.yaml", `
pass_class: RepeatPass
RepeatPass:
  body:
    pass_class: StandardPass
    StandardPass:
      name: CliffordSimp
      allow_swaps: true
      target_2qb_gate: CX
`)

	fromJSON, err := LoadFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoadFileExtensionDispatch(t *testing.T) {
	yamlDoc := "pass_class: StandardPass\nStandardPass:\n  name: SynthesiseTK\n"

	for _, ext := range []string{"pipeline.yml", "pipeline.YAML"} {
		path := writeDescriptor(t, ext, yamlDoc)
		p, err := LoadFile(path)
		require.NoError(t, err, ext)
		assert.Equal(t, pass.ClassStandard, p.Class())
	}

	// The same bytes under a .json extension are rejected as JSON.
	path := writeDescriptor(t, "pipeline.json", yamlDoc)
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	l := &Loader{}
	_, err := l.Load(strings.NewReader("{unclosed"), FormatYAML)
	require.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
