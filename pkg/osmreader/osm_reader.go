package osmreader

import (
	"context"
	"os"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/director"
	"github.com/lintang-b-s/netgraph/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// attribute schema of line records produced by this reader. FieldOneway is
// the direction field: "yes" marks forward-only ways, "-1" reversed ways, ""
// two-way ways.
const (
	FieldOneway = iota
	FieldMaxSpeed
	FieldHighway
	FieldName

	NumFields
)

const (
	DirectionMarkerForward = "yes"
	DirectionMarkerReverse = "-1"
	DirectionMarkerBoth    = ""
)

var acceptedHighway = map[string]struct{}{
	"motorway": {}, "trunk": {}, "primary": {}, "secondary": {}, "tertiary": {},
	"unclassified": {}, "residential": {}, "service": {}, "motorway_link": {},
	"trunk_link": {}, "primary_link": {}, "secondary_link": {}, "tertiary_link": {},
	"living_street": {}, "road": {}, "track": {}, "motorroad": {},
}

type OsmReader struct {
	log *zap.Logger
}

func NewOsmReader(log *zap.Logger) *OsmReader {
	return &OsmReader{log: log}
}

type pendingWay struct {
	nodeIds    []int64
	attributes []string
}

// Read scan an .osm.pbf file and emit one line record per routable way.
// two passes: first the ways (node id lists plus attributes), then the node
// coordinates the ways reference.
func (o *OsmReader) Read(mapFile string) ([]director.LineRecord, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wantedNodes := make(map[int64]geo.Coordinate)
	pending := make([]pendingWay, 0)

	scanner := osmpbf.New(context.Background(), f, 0)
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := obj.(*osm.Way)
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}

		nodeIds := make([]int64, len(way.Nodes))
		for i, n := range way.Nodes {
			nodeIds[i] = int64(n.ID)
			wantedNodes[int64(n.ID)] = geo.Coordinate{}
		}

		highway := way.Tags.Find("highway")

		attributes := make([]string, NumFields)
		attributes[FieldOneway] = onewayMarker(way)
		attributes[FieldMaxSpeed] = maxSpeed(way, highway)
		attributes[FieldHighway] = highway
		attributes[FieldName] = way.Tags.Find("name")

		pending = append(pending, pendingWay{nodeIds: nodeIds, attributes: attributes})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()

	o.log.Info("scanned routable ways", zap.Int("ways", len(pending)),
		zap.Int("nodes", len(wantedNodes)))

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	scanner = osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := wantedNodes[int64(node.ID)]; ok {
			wantedNodes[int64(node.ID)] = geo.NewCoordinate(node.Lat, node.Lon)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	records := make([]director.LineRecord, 0, len(pending))
	for _, w := range pending {
		geom := make([]geo.Coordinate, 0, len(w.nodeIds))
		for _, id := range w.nodeIds {
			c, ok := wantedNodes[id]
			if !ok || (c.Lat == 0 && c.Lon == 0) {
				continue // node missing from the extract
			}
			geom = append(geom, c)
		}
		if len(geom) < 2 {
			continue
		}
		records = append(records, director.NewLineRecord(geom, w.attributes))
	}

	o.log.Info("built line records", zap.Int("records", len(records)))
	return records, nil
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}

// typical speeds (km/h) per road class, used when a way has no maxspeed tag
var highwayClassSpeed = map[pkg.OsmHighwayType]string{
	pkg.MOTORWAY: "100", pkg.TRUNK: "80", pkg.PRIMARY: "60", pkg.SECONDARY: "50",
	pkg.TERTIARY: "40", pkg.UNCLASSIFIED: "30", pkg.RESIDENTIAL: "30", pkg.SERVICE: "20",
	pkg.MOTORWAY_LINK: "60", pkg.TRUNK_LINK: "50", pkg.PRIMARY_LINK: "40",
	pkg.SECONDARY_LINK: "40", pkg.TERTIARY_LINK: "30", pkg.LIVING_STREET: "10",
	pkg.ROAD: "30", pkg.TRACK: "15", pkg.MOTORROAD: "80",
}

// maxSpeed the maxspeed tag, or a class default when the tag is missing.
func maxSpeed(way *osm.Way, highway string) string {
	if tagged := way.Tags.Find("maxspeed"); tagged != "" {
		return tagged
	}
	return highwayClassSpeed[pkg.GetHighwayType(highway)]
}

func onewayMarker(way *osm.Way) string {
	switch way.Tags.Find("oneway") {
	case "yes", "true", "1":
		return DirectionMarkerForward
	case "-1", "reverse":
		return DirectionMarkerReverse
	default:
		return DirectionMarkerBoth
	}
}
