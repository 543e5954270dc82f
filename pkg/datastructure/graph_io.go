package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// WriteGraph serialize the graph as bzip2-compressed text:
// header (vertex count, edge count, criterion count), criterion names,
// one row per vertex, one row per edge.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n", len(g.vertices), len(g.edges), len(g.criteria))
	fmt.Fprintf(w, "%s\n", strings.Join(g.criteria, " "))

	for vId := 0; vId < len(g.vertices); vId++ {
		v := &g.vertices[vId]
		latF := strconv.FormatFloat(v.lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(v.lon, 'f', -1, 64)

		fmt.Fprintf(w, "%d %s %s\n", v.id, latF, lonF)
	}

	for i := range g.edges {
		e := &g.edges[i]
		distF := strconv.FormatFloat(e.dist, 'f', -1, 64)

		fmt.Fprintf(w, "%d %d %d %s", e.edgeId, e.tail, e.head, distF)
		for _, c := range e.costs {
			fmt.Fprintf(w, " %s", strconv.FormatFloat(c, 'f', -1, 64))
		}
		fmt.Fprintf(w, "\n")
	}

	return w.Flush()
}

// ReadGraph deserialize a graph written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := readLine(br)
	if err != nil {
		return nil, err
	}
	header := strings.Fields(line)
	if len(header) != 3 {
		return nil, fmt.Errorf("malformed graph header: %q", line)
	}
	numVertices, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, err
	}
	numCriteria, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, err
	}

	line, err = readLine(br)
	if err != nil {
		return nil, err
	}
	criteria := strings.Fields(line)
	if len(criteria) != numCriteria {
		return nil, fmt.Errorf("expected %d criterion names, got %d", numCriteria, len(criteria))
	}

	g := NewGraph(criteria)

	for i := 0; i < numVertices; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		ff := strings.Fields(line)
		if len(ff) != 3 {
			return nil, fmt.Errorf("malformed vertex row: %q", line)
		}
		lat, err := strconv.ParseFloat(ff[1], 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(ff[2], 64)
		if err != nil {
			return nil, err
		}
		g.AddVertex(lat, lon)
	}

	for i := 0; i < numEdges; i++ {
		line, err = readLine(br)
		if err != nil {
			return nil, err
		}
		ff := strings.Fields(line)
		if len(ff) != 4+numCriteria {
			return nil, fmt.Errorf("malformed edge row: %q", line)
		}
		tail, err := strconv.ParseUint(ff[1], 10, 32)
		if err != nil {
			return nil, err
		}
		head, err := strconv.ParseUint(ff[2], 10, 32)
		if err != nil {
			return nil, err
		}
		dist, err := strconv.ParseFloat(ff[3], 64)
		if err != nil {
			return nil, err
		}
		costs := make([]float64, numCriteria)
		for c := 0; c < numCriteria; c++ {
			costs[c], err = strconv.ParseFloat(ff[4+c], 64)
			if err != nil {
				return nil, err
			}
		}
		if _, err := g.AddEdge(Index(tail), Index(head), dist, costs); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
		} else {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
