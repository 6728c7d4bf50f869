package pass

import "encoding/json"

// StandardPass is a concrete pass from the compiler's catalog, adjacently
// tagged on the wire by a "name" field with the payload fields flattened
// into the same object.
//
// This is a sealed interface - only the catalog types in this package and
// UnrecognizedPass implement it. The catalog is open-ended: decoding an
// unknown name yields an UnrecognizedPass rather than an error, so code
// matching over StandardPass must always keep a fallback arm.
type StandardPass interface {
	passName() string // Marker method - seals interface and yields the wire tag
}

// Name returns the wire tag for a standard pass.
func Name(p StandardPass) string { return p.passName() }

// UnrecognizedPass is the forward-compatibility catch-all for catalog
// names this package does not know. It retains the raw name and raw field
// map and re-encodes without loss.
type UnrecognizedPass struct {
	// Name is the wire tag as received.
	Name string
	// Fields holds the payload fields verbatim, keyed by wire name.
	Fields map[string]json.RawMessage
}

func (p UnrecognizedPass) passName() string { return p.Name }

// RebaseCustom re-bases the circuit to a custom basis.
type RebaseCustom struct {
	// BasisAllowed lists the OpTypes of supported gates, in priority order.
	BasisAllowed []string `json:"basis_allowed"`
	// BasisCXReplacement is a circuit implementing CX in the target set.
	BasisCXReplacement Circuit `json:"basis_cx_replacement"`
	// BasisTK1Replacement is an externally-interpreted function encoding
	// for single-qubit synthesis, carried opaque.
	BasisTK1Replacement string `json:"basis_tk1_replacement"`
}

// RebaseCustomViaTK2 is a convenience custom rebase targeting TK2.
type RebaseCustomViaTK2 struct{}

// AutoRebase automatically re-bases to a given gate set.
type AutoRebase struct {
	BasisAllowed []string `json:"basis_allowed"`
	AllowSwaps   bool     `json:"allow_swaps"`
}

// SquashCustom is a custom squashing configuration.
type SquashCustom struct {
	BasisSingleqs       []string `json:"basis_singleqs"`
	BasisTK1Replacement string   `json:"basis_tk1_replacement"`
	AlwaysSquashSymbols bool     `json:"always_squash_symbols"`
}

// AutoSquash automatically squashes single-qubit gates.
type AutoSquash struct {
	BasisSingleqs []string `json:"basis_singleqs"`
}

// CommuteThroughMultis commutes multi-qubit gates past other operations.
type CommuteThroughMultis struct{}

// DecomposeArbitrarilyControlledGates decomposes controlled gates.
type DecomposeArbitrarilyControlledGates struct{}

// DecomposeBoxes decomposes generic boxes using inclusion/exclusion
// filters. A nil inclusion list means "no filter", which is distinct from
// an empty list and is omitted from the encoding entirely.
type DecomposeBoxes struct {
	ExcludedTypes    []string  `json:"excluded_types"`
	ExcludedOpgroups []string  `json:"excluded_opgroups"`
	IncludedTypes    *[]string `json:"included_types,omitempty"`
	IncludedOpgroups *[]string `json:"included_opgroups,omitempty"`
}

// DecomposeMultiQubitsCX decomposes multi-qubit boxes into CX.
type DecomposeMultiQubitsCX struct{}

// DecomposeSingleQubitsTK1 decomposes single-qubit boxes into TK1.
type DecomposeSingleQubitsTK1 struct{}

// PeepholeOptimise2Q configures the two-qubit peephole optimiser.
type PeepholeOptimise2Q struct {
	AllowSwaps bool `json:"allow_swaps"`
}

// RebaseTket re-bases to the default TKET gate set.
type RebaseTket struct{}

// RebaseUFR re-bases to the UFR gate set.
type RebaseUFR struct{}

// RemoveRedundancies removes redundant operations.
type RemoveRedundancies struct{}

// SynthesiseTK is the synthesis pass for the TK gate set.
type SynthesiseTK struct{}

// SynthesiseTket is the synthesis pass for the TKET gate set.
type SynthesiseTket struct{}

// SynthesiseOQC is a synthesis pass targeting OQC hardware.
type SynthesiseOQC struct{}

// SquashTK1 squashes TK1 gates.
type SquashTK1 struct{}

// SquashRzPhasedX squashes Rz/PhasedX patterns.
type SquashRzPhasedX struct{}

// FlattenRegisters flattens registers.
type FlattenRegisters struct{}

// DelayMeasures delays measurements towards the end of the circuit.
type DelayMeasures struct {
	AllowPartial bool `json:"allow_partial"`
}

// ZZPhaseToRz converts ZZPhase into Rz rotations.
type ZZPhaseToRz struct{}

// RemoveDiscarded removes discarded outputs.
type RemoveDiscarded struct{}

// SimplifyMeasured simplifies measured wires.
type SimplifyMeasured struct{}

// RemoveBarriers removes explicit barrier operations.
type RemoveBarriers struct{}

// RemovePhaseOps removes phase-only operations.
type RemovePhaseOps struct{}

// DecomposeBridges decomposes bridge gadgets.
type DecomposeBridges struct{}

// KAKDecomposition runs the KAK decomposition.
type KAKDecomposition struct {
	// Fidelity is the threshold that preserves semantics, nominally 0-1.
	Fidelity      float64            `json:"fidelity"`
	AllowSwaps    bool               `json:"allow_swaps"`
	Target2QbGate TargetTwoQubitGate `json:"target_2qb_gate"`
}

// ThreeQubitSquash squashes arbitrary three-qubit unitaries.
type ThreeQubitSquash struct {
	AllowSwaps bool `json:"allow_swaps"`
}

// FullPeepholeOptimise is the full peephole optimisation pipeline.
type FullPeepholeOptimise struct {
	AllowSwaps    bool               `json:"allow_swaps"`
	Target2QbGate TargetTwoQubitGate `json:"target_2qb_gate"`
}

// ComposePhasePolyBoxes composes phase-polynomial boxes.
type ComposePhasePolyBoxes struct {
	// MinSize is the minimal number of CX gates per phase.
	MinSize uint32 `json:"min_size"`
}

// EulerAngleReduction reduces Euler angles for single qubits.
type EulerAngleReduction struct {
	EulerP      RotationAxis `json:"euler_p"`
	EulerQ      RotationAxis `json:"euler_q"`
	EulerStrict bool         `json:"euler_strict"`
}

// RoutingPass is the standard routing pipeline.
type RoutingPass struct {
	Architecture  Architecture  `json:"architecture"`
	RoutingConfig RoutingConfig `json:"routing_config"`
}

// CustomRoutingPass is a custom routing configuration.
type CustomRoutingPass struct {
	Architecture  Architecture  `json:"architecture"`
	RoutingConfig RoutingConfig `json:"routing_config"`
}

// PlacementPass configures placements explicitly.
type PlacementPass struct {
	Placement Placement `json:"placement"`
}

// NaivePlacementPass is the naive placement pass.
type NaivePlacementPass struct {
	Architecture Architecture `json:"architecture"`
}

// RenameQubitsPass renames qubits according to a mapping.
type RenameQubitsPass struct {
	// QubitMap pairs source and destination qubits, in order.
	QubitMap []QubitMapping `json:"qubit_map"`
}

// CliffordSimp is the Clifford simplification pass.
type CliffordSimp struct {
	AllowSwaps    bool               `json:"allow_swaps"`
	Target2QbGate TargetTwoQubitGate `json:"target_2qb_gate"`
}

// DecomposeSwapsToCXs decomposes swaps into CXs.
type DecomposeSwapsToCXs struct {
	Architecture Architecture `json:"architecture"`
	// Directed reports whether the architecture edges are directed.
	Directed bool `json:"directed"`
}

// DecomposeSwapsToCircuit decomposes swaps into a replacement circuit.
type DecomposeSwapsToCircuit struct {
	SwapReplacement Circuit `json:"swap_replacement"`
}

// OptimisePhaseGadgets optimises phase gadgets.
type OptimisePhaseGadgets struct {
	CxConfig CxConfig `json:"cx_config"`
}

// OptimisePairwiseGadgets optimises pairwise gadgets.
type OptimisePairwiseGadgets struct{}

// PauliSynthConfig is the configuration shape shared by the Pauli
// synthesis family. Four distinct wire tags carry this same payload.
type PauliSynthConfig struct {
	PauliSynthStrat PauliSynthStrategy `json:"pauli_synth_strat"`
	CxConfig        CxConfig           `json:"cx_config"`
}

// PauliSimp is the Pauli simplification pass.
type PauliSimp struct{ PauliSynthConfig }

// PauliExponentials synthesises Pauli exponentials.
type PauliExponentials struct{ PauliSynthConfig }

// GuidedPauliSimp is the guided Pauli simplification pass.
type GuidedPauliSimp struct{ PauliSynthConfig }

// PauliSquash is the Pauli squashing pass.
type PauliSquash struct{ PauliSynthConfig }

// SimplifyInitial simplifies initial states.
type SimplifyInitial struct {
	AllowClassical  bool `json:"allow_classical"`
	CreateAllQubits bool `json:"create_all_qubits"`
	// XCircuit is an optional witness circuit; omitted when absent.
	XCircuit *Circuit `json:"x_circuit,omitempty"`
}

// FullMappingPass is the full mapping pipeline.
type FullMappingPass struct {
	Architecture  Architecture  `json:"architecture"`
	Placement     Placement     `json:"placement"`
	RoutingConfig RoutingConfig `json:"routing_config"`
}

// DefaultMappingPass is the default mapping pipeline.
type DefaultMappingPass struct {
	Architecture  Architecture `json:"architecture"`
	DelayMeasures bool         `json:"delay_measures"`
}

// CXMappingPass is the CX-focused mapping pipeline.
type CXMappingPass struct {
	Architecture  Architecture  `json:"architecture"`
	Placement     Placement     `json:"placement"`
	RoutingConfig RoutingConfig `json:"routing_config"`
	Directed      bool          `json:"directed"`
	DelayMeasures bool          `json:"delay_measures"`
}

// ContextSimp is the context simplification pass.
type ContextSimp struct {
	AllowClassical bool    `json:"allow_classical"`
	XCircuit       Circuit `json:"x_circuit"`
}

// DecomposeTK2 decomposes TK2 gates, optionally guided by fidelity hints.
type DecomposeTK2 struct {
	Fidelities *DecomposeTK2Fidelities `json:"fidelities,omitempty"`
}

// CnXPairwiseDecomposition is the pairwise decomposition of CnX.
type CnXPairwiseDecomposition struct{}

// RemoveImplicitQubitPermutation removes implicit permutation annotations.
type RemoveImplicitQubitPermutation struct{}

// NormaliseTK2 normalises TK2 parameters.
type NormaliseTK2 struct{}

// RoundAngles rounds angles to coarse precision.
type RoundAngles struct {
	// N is the level of precision.
	N         int64 `json:"n"`
	OnlyZeros bool  `json:"only_zeros"`
}

// GreedyPauliSimp is the greedy Pauli simplification heuristic. The wire
// schema declares every numeric field as floating point, including the
// conceptually integral seed, lookahead and trial counts; they must stay
// float64 so the representation survives the round trip.
type GreedyPauliSimp struct {
	DiscountRate     float64 `json:"discount_rate"`
	DepthWeight      float64 `json:"depth_weight"`
	MaxLookahead     float64 `json:"max_lookahead"`
	MaxTQECandidates float64 `json:"max_tqe_candidates"`
	Seed             float64 `json:"seed"`
	AllowZZPhase     bool    `json:"allow_zzphase"`
	ThreadTimeout    float64 `json:"thread_timeout"`
	OnlyReduce       bool    `json:"only_reduce"`
	Trials           float64 `json:"trials"`
}

// RxFromSX synthesises RX from SX.
type RxFromSX struct{}

// FlattenRelabelRegistersPass flattens and relabels registers.
type FlattenRelabelRegistersPass struct {
	Label                     string `json:"label"`
	RelabelClassicalRegisters bool   `json:"relabel_classical_registers"`
}

func (RebaseCustom) passName() string                        { return "RebaseCustom" }
func (RebaseCustomViaTK2) passName() string                  { return "RebaseCustomViaTK2" }
func (AutoRebase) passName() string                          { return "AutoRebase" }
func (SquashCustom) passName() string                        { return "SquashCustom" }
func (AutoSquash) passName() string                          { return "AutoSquash" }
func (CommuteThroughMultis) passName() string                { return "CommuteThroughMultis" }
func (DecomposeArbitrarilyControlledGates) passName() string { return "DecomposeArbitrarilyControlledGates" }
func (DecomposeBoxes) passName() string                      { return "DecomposeBoxes" }
func (DecomposeMultiQubitsCX) passName() string              { return "DecomposeMultiQubitsCX" }
func (DecomposeSingleQubitsTK1) passName() string            { return "DecomposeSingleQubitsTK1" }
func (PeepholeOptimise2Q) passName() string                  { return "PeepholeOptimise2Q" }
func (RebaseTket) passName() string                          { return "RebaseTket" }
func (RebaseUFR) passName() string                           { return "RebaseUFR" }
func (RemoveRedundancies) passName() string                  { return "RemoveRedundancies" }
func (SynthesiseTK) passName() string                        { return "SynthesiseTK" }
func (SynthesiseTket) passName() string                      { return "SynthesiseTket" }
func (SynthesiseOQC) passName() string                       { return "SynthesiseOQC" }
func (SquashTK1) passName() string                           { return "SquashTK1" }
func (SquashRzPhasedX) passName() string                     { return "SquashRzPhasedX" }
func (FlattenRegisters) passName() string                    { return "FlattenRegisters" }
func (DelayMeasures) passName() string                       { return "DelayMeasures" }
func (ZZPhaseToRz) passName() string                         { return "ZZPhaseToRz" }
func (RemoveDiscarded) passName() string                     { return "RemoveDiscarded" }
func (SimplifyMeasured) passName() string                    { return "SimplifyMeasured" }
func (RemoveBarriers) passName() string                      { return "RemoveBarriers" }
func (RemovePhaseOps) passName() string                      { return "RemovePhaseOps" }
func (DecomposeBridges) passName() string                    { return "DecomposeBridges" }
func (KAKDecomposition) passName() string                    { return "KAKDecomposition" }
func (ThreeQubitSquash) passName() string                    { return "ThreeQubitSquash" }
func (FullPeepholeOptimise) passName() string                { return "FullPeepholeOptimise" }
func (ComposePhasePolyBoxes) passName() string               { return "ComposePhasePolyBoxes" }
func (EulerAngleReduction) passName() string                 { return "EulerAngleReduction" }
func (RoutingPass) passName() string                         { return "RoutingPass" }
func (CustomRoutingPass) passName() string                   { return "CustomRoutingPass" }
func (PlacementPass) passName() string                       { return "PlacementPass" }
func (NaivePlacementPass) passName() string                  { return "NaivePlacementPass" }
func (RenameQubitsPass) passName() string                    { return "RenameQubitsPass" }
func (CliffordSimp) passName() string                        { return "CliffordSimp" }
func (DecomposeSwapsToCXs) passName() string                 { return "DecomposeSwapsToCXs" }
func (DecomposeSwapsToCircuit) passName() string             { return "DecomposeSwapsToCircuit" }
func (OptimisePhaseGadgets) passName() string                { return "OptimisePhaseGadgets" }
func (OptimisePairwiseGadgets) passName() string             { return "OptimisePairwiseGadgets" }
func (PauliSimp) passName() string                           { return "PauliSimp" }
func (PauliExponentials) passName() string                   { return "PauliExponentials" }
func (GuidedPauliSimp) passName() string                     { return "GuidedPauliSimp" }
func (PauliSquash) passName() string                         { return "PauliSquash" }
func (SimplifyInitial) passName() string                     { return "SimplifyInitial" }
func (FullMappingPass) passName() string                     { return "FullMappingPass" }
func (DefaultMappingPass) passName() string                  { return "DefaultMappingPass" }
func (CXMappingPass) passName() string                       { return "CXMappingPass" }
func (ContextSimp) passName() string                         { return "ContextSimp" }
func (DecomposeTK2) passName() string                        { return "DecomposeTK2" }
func (CnXPairwiseDecomposition) passName() string            { return "CnXPairwiseDecomposition" }
func (RemoveImplicitQubitPermutation) passName() string      { return "RemoveImplicitQubitPermutation" }
func (NormaliseTK2) passName() string                        { return "NormaliseTK2" }
func (RoundAngles) passName() string                         { return "RoundAngles" }
func (GreedyPauliSimp) passName() string                     { return "GreedyPauliSimp" }
func (RxFromSX) passName() string                            { return "RxFromSX" }
func (FlattenRelabelRegistersPass) passName() string         { return "FlattenRelabelRegistersPass" }
