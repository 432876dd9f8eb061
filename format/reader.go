// File: reader.go
// Role: Read parses the spec.md §6 input grammar into a Document: one
// host graph.Graph holding every positive example as a disjoint component,
// plus one definition graph.Graph per predefined substructure (`PS` block).
package format

import (
	"bufio"
	"io"
	"strconv"

	"github.com/anomgraph/gbad/gbaderr"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/label"
)

// Document is everything Read extracts from one input file.
type Document struct {
	Host        *graph.Graph
	Registry    *label.Registry
	NumExamples int
	Predefined  []*graph.Graph
}

// blockKind distinguishes which graph a v/e/d/u line currently targets.
type blockKind int

const (
	blockNone blockKind = iota
	blockExample
	blockPredefined
)

// Read parses r under the MDL/FSM grammar. directed controls whether a
// plain `e` edge line is directed (spec.md §6: "`e` is directed if the
// `directed` config is true, else undirected"); `d`/`u` lines are always
// directed/undirected regardless of directed.
func Read(r io.Reader, directed bool) (*Document, error) {
	doc := &Document{
		Host:     graph.New(),
		Registry: label.NewRegistry(),
	}

	kind := blockNone
	var current *graph.Graph
	exampleIdx := -1
	localToHost := map[int]int{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := tokenizeLine(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch tokens[0] {
		case "XP":
			kind = blockExample
			current = doc.Host
			exampleIdx++
			doc.NumExamples++
			localToHost = map[int]int{}
		case "PS":
			kind = blockPredefined
			current = graph.New()
			doc.Predefined = append(doc.Predefined, current)
			localToHost = map[int]int{}
		case "v":
			if err := readVertex(tokens, lineNo, doc.Registry, current, kind, exampleIdx, localToHost); err != nil {
				return nil, err
			}
		case "e":
			if err := readEdge(tokens, lineNo, doc.Registry, current, directed, localToHost); err != nil {
				return nil, err
			}
		case "d":
			if err := readEdge(tokens, lineNo, doc.Registry, current, true, localToHost); err != nil {
				return nil, err
			}
		case "u":
			if err := readEdge(tokens, lineNo, doc.Registry, current, false, localToHost); err != nil {
				return nil, err
			}
		default:
			return nil, gbaderr.NewParseError(lineNo, "unrecognized line keyword "+tokens[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, gbaderr.NewParseError(lineNo, "reading input: "+err.Error())
	}
	if doc.NumExamples == 0 {
		return nil, gbaderr.NewParseError(lineNo, "empty positive example set")
	}

	return doc, nil
}

func readVertex(tokens []string, lineNo int, reg *label.Registry, current *graph.Graph, kind blockKind, exampleIdx int, localToHost map[int]int) error {
	if current == nil || len(tokens) != 3 {
		return gbaderr.NewParseError(lineNo, "malformed vertex line")
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil {
		return gbaderr.NewParseError(lineNo, "vertex number must be an integer")
	}
	l := parseLabel(tokens[2])
	labelIdx := reg.Intern(l)

	prov := graph.Provenance{SourceVertex: -1, SourceExample: -1, OriginalIndex: n}
	if kind == blockExample {
		prov.SourceExample = exampleIdx
	}
	idx := current.AddVertex(labelIdx, prov)
	localToHost[n] = idx

	return nil
}

func readEdge(tokens []string, lineNo int, reg *label.Registry, current *graph.Graph, directed bool, localToHost map[int]int) error {
	if current == nil || len(tokens) != 4 {
		return gbaderr.NewParseError(lineNo, "malformed edge line")
	}
	src, err := strconv.Atoi(tokens[1])
	if err != nil {
		return gbaderr.NewParseError(lineNo, "edge source must be an integer")
	}
	dst, err := strconv.Atoi(tokens[2])
	if err != nil {
		return gbaderr.NewParseError(lineNo, "edge destination must be an integer")
	}
	v1, ok1 := localToHost[src]
	v2, ok2 := localToHost[dst]
	if !ok1 || !ok2 {
		return gbaderr.NewParseError(lineNo, "edge references an undeclared vertex")
	}
	labelIdx := reg.Intern(parseLabel(tokens[3]))
	if _, err := current.AddEdge(v1, v2, labelIdx, directed, graph.EdgeProvenance{}); err != nil {
		return gbaderr.NewParseError(lineNo, err.Error())
	}

	return nil
}

// parseLabel follows subgen.c's get_label: try a numeric token first, fall
// back to a (quote-stripped, by the tokenizer) string.
func parseLabel(tok string) label.Label {
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return label.NumericLabel(f)
	}

	return label.StringLabel(tok)
}
