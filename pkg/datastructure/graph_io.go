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
	"github.com/lintang-b-s/Frontierx/pkg/util"
)

// WriteGraph serializes the graph to a bzip2-compressed text file.
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

	hasCoords := 0
	if g.HasCoordinates() {
		hasCoords = 1
	}
	fmt.Fprintf(w, "%d %d %d\n", g.NumberOfVertices(), g.NumberOfEdges(), hasCoords)

	if hasCoords == 1 {
		for v := 0; v < g.NumberOfVertices(); v++ {
			latF := strconv.FormatFloat(g.lats[v], 'f', -1, 64)
			lonF := strconv.FormatFloat(g.lons[v], 'f', -1, 64)
			fmt.Fprintf(w, "%s %s\n", latF, lonF)
		}
	}

	for u := 0; u < g.NumberOfVertices(); u++ {
		for _, e := range g.outEdges[u] {
			weightF := strconv.FormatFloat(e.weight, 'f', -1, 64)
			distF := strconv.FormatFloat(e.dist, 'f', -1, 64)
			fmt.Fprintf(w, "%d %d %s %s\n", u, e.head, weightF, distF)
		}
	}

	return w.Flush()
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

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Index(val), nil
}

// ReadGraph deserializes a graph written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	header, err := readLine(br)
	if err != nil {
		return nil, err
	}
	hf := fields(header)
	if len(hf) != 3 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed graph header: %q", header)
	}

	n, err := strconv.Atoi(hf[0])
	if err != nil {
		return nil, err
	}
	m, err := strconv.Atoi(hf[1])
	if err != nil {
		return nil, err
	}
	hasCoords := hf[2] == "1"

	g := NewGraph(n)

	if hasCoords {
		lats := make([]float64, n)
		lons := make([]float64, n)
		for v := 0; v < n; v++ {
			line, err := readLine(br)
			if err != nil {
				return nil, err
			}
			cf := fields(line)
			if len(cf) != 2 {
				return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed coordinate line: %q", line)
			}
			lats[v], err = util.StringToFloat64(cf[0])
			if err != nil {
				return nil, err
			}
			lons[v], err = util.StringToFloat64(cf[1])
			if err != nil {
				return nil, err
			}
		}
		g.SetCoords(lats, lons)
	}

	for i := 0; i < m; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		ef := fields(line)
		if len(ef) != 4 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "malformed edge line: %q", line)
		}

		from, err := ParseIndex(ef[0])
		if err != nil {
			return nil, err
		}
		to, err := ParseIndex(ef[1])
		if err != nil {
			return nil, err
		}
		weight, err := util.StringToFloat64(ef[2])
		if err != nil {
			return nil, err
		}
		dist, err := util.StringToFloat64(ef[3])
		if err != nil {
			return nil, err
		}

		if err := g.AddEdge(from, to, weight, dist); err != nil {
			return nil, err
		}
	}

	return g, nil
}
