// Package format implements the line-oriented MDL/FSM graph grammar of
// spec.md §6: a Reader for input graph files (positive examples and
// predefined substructures) and writers for the human-readable, machine-
// readable, compressed-graph, and optional Graphviz DOT output forms.
//
// Grammar (see SPEC_FULL.md "Label file grammar", grounded on subgen.c's
// get_token/get_label/get_substructure/write_graph):
//
//	XP                   start a new positive example (top-level component)
//	PS                   start a predefined substructure
//	v <n> <label>        declare vertex n (1-based, consecutive per block)
//	e <src> <dst> <label> edge; directed iff the reader's Directed option is set
//	d <src> <dst> <label> always directed
//	u <src> <dst> <label> always undirected
//	% ...                line comment
package format
