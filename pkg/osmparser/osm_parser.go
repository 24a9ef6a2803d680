package osmparser

import (
	"context"
	"os"

	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

type nodeCoord struct {
	lat float64
	lon float64
}

// OsmParser builds a routable graph from an openstreetmap pbf extract.
// Every highway way contributes one edge per consecutive node pair, weighted
// by travel time in minute at the way's speed.
type OsmParser struct {
	acceptedNodes map[int64]nodeCoord
	usedNodes     map[int64]struct{}
	nodeIdMap     map[int64]datastructure.Index
}

func NewOsmParser() *OsmParser {
	return &OsmParser{
		acceptedNodes: make(map[int64]nodeCoord),
		usedNodes:     make(map[int64]struct{}),
		nodeIdMap:     make(map[int64]datastructure.Index),
	}
}

// speed in km/h per highway class
var roadSpeeds = map[string]float64{
	"motorway":       90,
	"trunk":          80,
	"primary":        60,
	"secondary":      50,
	"tertiary":       40,
	"unclassified":   30,
	"residential":    30,
	"living_street":  10,
	"service":        20,
	"road":           30,
	"motorway_link":  45,
	"trunk_link":     40,
	"primary_link":   30,
	"secondary_link": 25,
	"tertiary_link":  20,
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	_, ok := roadSpeeds[highway]
	return ok
}

func isOneWay(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		return true
	}
	return way.Tags.Find("highway") == "motorway" ||
		way.Tags.Find("junction") == "roundabout"
}

// Parse reads mapFile in three passes: the first marks the nodes referenced
// by accepted ways, the second collects their coordinates, the third adds
// the edges. Returns the graph with vertex coordinates attached.
func (p *OsmParser) Parse(mapFile string, log *zap.Logger) (*datastructure.Graph, error) {
	log.Info("parsing osm pbf", zap.String("file", mapFile))

	if err := p.scanWays(mapFile); err != nil {
		return nil, err
	}
	if err := p.scanNodes(mapFile); err != nil {
		return nil, err
	}

	n := 0
	lats := make([]float64, 0, len(p.acceptedNodes))
	lons := make([]float64, 0, len(p.acceptedNodes))
	for osmId, coord := range p.acceptedNodes {
		p.nodeIdMap[osmId] = datastructure.Index(n)
		lats = append(lats, coord.lat)
		lons = append(lons, coord.lon)
		n++
	}

	graph := datastructure.NewGraphWithCoords(n, lats, lons)

	if err := p.buildEdges(mapFile, graph); err != nil {
		return nil, err
	}

	log.Info("osm graph built",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	return graph, nil
}

func (p *OsmParser) scanWays(mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if !acceptOsmWay(way) {
			continue
		}
		for _, wn := range way.Nodes {
			p.usedNodes[int64(wn.ID)] = struct{}{}
		}
	}
	return scanner.Err()
}

func (p *OsmParser) scanNodes(mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, ok := p.usedNodes[int64(node.ID)]; !ok {
			continue
		}
		p.acceptedNodes[int64(node.ID)] = nodeCoord{lat: node.Lat, lon: node.Lon}
	}
	return scanner.Err()
}

func (p *OsmParser) buildEdges(mapFile string, graph *datastructure.Graph) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if !acceptOsmWay(way) {
			continue
		}

		speed := roadSpeeds[way.Tags.Find("highway")]
		oneWay := isOneWay(way)

		for i := 0; i+1 < len(way.Nodes); i++ {
			fromOsm := int64(way.Nodes[i].ID)
			toOsm := int64(way.Nodes[i+1].ID)

			from, okFrom := p.nodeIdMap[fromOsm]
			to, okTo := p.nodeIdMap[toOsm]
			if !okFrom || !okTo {
				continue
			}

			fromCoord := p.acceptedNodes[fromOsm]
			toCoord := p.acceptedNodes[toOsm]

			distKm := geo.CalculateHaversineDistance(fromCoord.lat, fromCoord.lon,
				toCoord.lat, toCoord.lon)
			// travel time in minute
			weight := distKm / speed * 60.0
			distMeter := distKm * 1000.0

			if err := graph.AddEdge(from, to, weight, distMeter); err != nil {
				return err
			}
			if !oneWay {
				if err := graph.AddEdge(to, from, weight, distMeter); err != nil {
					return err
				}
			}
		}
	}
	return scanner.Err()
}
