package search

// ThetaStar is any-angle A*: when relaxing an edge, it first checks
// whether the edge's destination is visible from the vertex being
// expanded's own parent. If so it relaxes through that grandparent
// directly, on the straight-line distance between them rather than through
// the two grid edges; this is what lets Theta* paths cut corners instead
// of hugging the grid's connectivity. When the shortcut is blocked it
// falls back to ordinary A*-style relaxation through the vertex itself.
type ThetaStar struct {
	*HSearch
}

// NewThetaStar builds a Theta* search over graph from startID to goalID.
// los is consulted once per edge relaxation to test the candidate
// shortcut; it is required and NewThetaStar returns ErrInvalidQuery if it
// is nil.
func NewThetaStar(graph Graph, startID, goalID int, los LineOfSight) (*ThetaStar, error) {
	if los == nil || goalID < 0 || goalID >= graph.NumNodes() {
		return nil, ErrInvalidQuery
	}
	hs, err := newHSearch(graph, startID, goalID, EuclideanHeuristic(graph, goalID), los, thetaStarCost)
	if err != nil {
		return nil, err
	}
	return &ThetaStar{HSearch: hs}, nil
}

func thetaStarCost(hs *HSearch, s *SearchNode, edge Edge) (parent int, g float64) {
	if s.Parent != -1 && s.Parent != s.ID {
		grandparent := hs.store.Get(s.Parent)
		if hs.los.Visible(grandparent.ID, edge.To) {
			shortcut := hs.graph.Position(grandparent.ID).Distance(hs.graph.Position(edge.To))
			candidate := grandparent.G + shortcut
			if candidate < s.G+edge.Cost {
				return grandparent.ID, candidate
			}
		}
	}
	return s.ID, s.G + edge.Cost
}
