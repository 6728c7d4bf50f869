package pass

import "encoding/json"

// catalogEntry describes the wire contract of one known standard pass:
// which payload keys must be present and which may be. Keys outside the
// union (plus the "name" tag) violate the strict shape.
type catalogEntry struct {
	required []string
	optional []string
	decode   func(data []byte) (StandardPass, error)
}

// decodeInto unmarshals a payload object into a fresh variant value. The
// caller has already validated the key set, so unmatched keys (only the
// "name" tag) are safely ignored by encoding/json.
func decodeInto[T StandardPass](data []byte) (StandardPass, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func entry[T StandardPass](required []string, optional ...string) catalogEntry {
	return catalogEntry{required: required, optional: optional, decode: decodeInto[T]}
}

func leaf[T StandardPass]() catalogEntry {
	return catalogEntry{decode: decodeInto[T]}
}

// catalog maps wire tags to their contracts. The tag strings are fixed by
// the external schema, casing included.
var catalog = map[string]catalogEntry{
	"RebaseCustom":                        entry[RebaseCustom]([]string{"basis_allowed", "basis_cx_replacement", "basis_tk1_replacement"}),
	"RebaseCustomViaTK2":                  leaf[RebaseCustomViaTK2](),
	"AutoRebase":                          entry[AutoRebase]([]string{"basis_allowed", "allow_swaps"}),
	"SquashCustom":                        entry[SquashCustom]([]string{"basis_singleqs", "basis_tk1_replacement", "always_squash_symbols"}),
	"AutoSquash":                          entry[AutoSquash]([]string{"basis_singleqs"}),
	"CommuteThroughMultis":                leaf[CommuteThroughMultis](),
	"DecomposeArbitrarilyControlledGates": leaf[DecomposeArbitrarilyControlledGates](),
	"DecomposeBoxes":                      entry[DecomposeBoxes]([]string{"excluded_types", "excluded_opgroups"}, "included_types", "included_opgroups"),
	"DecomposeMultiQubitsCX":              leaf[DecomposeMultiQubitsCX](),
	"DecomposeSingleQubitsTK1":            leaf[DecomposeSingleQubitsTK1](),
	"PeepholeOptimise2Q":                  entry[PeepholeOptimise2Q]([]string{"allow_swaps"}),
	"RebaseTket":                          leaf[RebaseTket](),
	"RebaseUFR":                           leaf[RebaseUFR](),
	"RemoveRedundancies":                  leaf[RemoveRedundancies](),
	"SynthesiseTK":                        leaf[SynthesiseTK](),
	"SynthesiseTket":                      leaf[SynthesiseTket](),
	"SynthesiseOQC":                       leaf[SynthesiseOQC](),
	"SquashTK1":                           leaf[SquashTK1](),
	"SquashRzPhasedX":                     leaf[SquashRzPhasedX](),
	"FlattenRegisters":                    leaf[FlattenRegisters](),
	"DelayMeasures":                       entry[DelayMeasures]([]string{"allow_partial"}),
	"ZZPhaseToRz":                         leaf[ZZPhaseToRz](),
	"RemoveDiscarded":                     leaf[RemoveDiscarded](),
	"SimplifyMeasured":                    leaf[SimplifyMeasured](),
	"RemoveBarriers":                      leaf[RemoveBarriers](),
	"RemovePhaseOps":                      leaf[RemovePhaseOps](),
	"DecomposeBridges":                    leaf[DecomposeBridges](),
	"KAKDecomposition":                    entry[KAKDecomposition]([]string{"fidelity", "allow_swaps", "target_2qb_gate"}),
	"ThreeQubitSquash":                    entry[ThreeQubitSquash]([]string{"allow_swaps"}),
	"FullPeepholeOptimise":                entry[FullPeepholeOptimise]([]string{"allow_swaps", "target_2qb_gate"}),
	"ComposePhasePolyBoxes":               entry[ComposePhasePolyBoxes]([]string{"min_size"}),
	"EulerAngleReduction":                 entry[EulerAngleReduction]([]string{"euler_p", "euler_q", "euler_strict"}),
	"RoutingPass":                         entry[RoutingPass]([]string{"architecture", "routing_config"}),
	"CustomRoutingPass":                   entry[CustomRoutingPass]([]string{"architecture", "routing_config"}),
	"PlacementPass":                       entry[PlacementPass]([]string{"placement"}),
	"NaivePlacementPass":                  entry[NaivePlacementPass]([]string{"architecture"}),
	"RenameQubitsPass":                    entry[RenameQubitsPass]([]string{"qubit_map"}),
	"CliffordSimp":                        entry[CliffordSimp]([]string{"allow_swaps", "target_2qb_gate"}),
	"DecomposeSwapsToCXs":                 entry[DecomposeSwapsToCXs]([]string{"architecture", "directed"}),
	"DecomposeSwapsToCircuit":             entry[DecomposeSwapsToCircuit]([]string{"swap_replacement"}),
	"OptimisePhaseGadgets":                entry[OptimisePhaseGadgets]([]string{"cx_config"}),
	"OptimisePairwiseGadgets":             leaf[OptimisePairwiseGadgets](),
	"PauliSimp":                           entry[PauliSimp]([]string{"pauli_synth_strat", "cx_config"}),
	"PauliExponentials":                   entry[PauliExponentials]([]string{"pauli_synth_strat", "cx_config"}),
	"GuidedPauliSimp":                     entry[GuidedPauliSimp]([]string{"pauli_synth_strat", "cx_config"}),
	"PauliSquash":                         entry[PauliSquash]([]string{"pauli_synth_strat", "cx_config"}),
	"SimplifyInitial":                     entry[SimplifyInitial]([]string{"allow_classical", "create_all_qubits"}, "x_circuit"),
	"FullMappingPass":                     entry[FullMappingPass]([]string{"architecture", "placement", "routing_config"}),
	"DefaultMappingPass":                  entry[DefaultMappingPass]([]string{"architecture", "delay_measures"}),
	"CXMappingPass":                       entry[CXMappingPass]([]string{"architecture", "placement", "routing_config", "directed", "delay_measures"}),
	"ContextSimp":                         entry[ContextSimp]([]string{"allow_classical", "x_circuit"}),
	"DecomposeTK2":                        entry[DecomposeTK2](nil, "fidelities"),
	"CnXPairwiseDecomposition":            leaf[CnXPairwiseDecomposition](),
	"RemoveImplicitQubitPermutation":      leaf[RemoveImplicitQubitPermutation](),
	"NormaliseTK2":                        leaf[NormaliseTK2](),
	"RoundAngles":                         entry[RoundAngles]([]string{"n", "only_zeros"}),
	"GreedyPauliSimp":                     entry[GreedyPauliSimp]([]string{"discount_rate", "depth_weight", "max_lookahead", "max_tqe_candidates", "seed", "allow_zzphase", "thread_timeout", "only_reduce", "trials"}),
	"RxFromSX":                            leaf[RxFromSX](),
	"FlattenRelabelRegistersPass":         entry[FlattenRelabelRegistersPass]([]string{"label", "relabel_classical_registers"}),
}
