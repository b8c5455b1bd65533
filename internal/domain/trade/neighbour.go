package trade

import "sort"

// Neighbour is read-only reference data describing one neighbouring power.
// Scarcity is per commodity: 0 means abundant (no extra demand), higher
// means scarcer and therefore more demand. Fractional scarcity is allowed.
type Neighbour struct {
	name         string
	population   int
	relationship int
	distance     int
	scarcity     map[string]float64
}

// NewNeighbour creates a neighbour with validation
func NewNeighbour(name string, population, relationship, distance int, scarcity map[string]float64) (*Neighbour, error) {
	if name == "" {
		return nil, &ErrInvalidNeighbour{Name: name, Reason: "name cannot be empty"}
	}
	if population < 0 {
		return nil, &ErrInvalidNeighbour{Name: name, Reason: "population must be non-negative"}
	}
	if distance < 1 {
		return nil, &ErrInvalidNeighbour{Name: name, Reason: "distance must be positive"}
	}
	for commodity, value := range scarcity {
		if value < 0 {
			return nil, &ErrInvalidNeighbour{Name: name, Reason: "scarcity for " + commodity + " must be non-negative"}
		}
	}

	copied := make(map[string]float64, len(scarcity))
	for k, v := range scarcity {
		copied[k] = v
	}

	return &Neighbour{
		name:         name,
		population:   population,
		relationship: relationship,
		distance:     distance,
		scarcity:     copied,
	}, nil
}

// Name returns the neighbour's name
func (n *Neighbour) Name() string {
	return n.name
}

// Population returns the neighbour's population score
func (n *Neighbour) Population() int {
	return n.population
}

// Relationship returns the signed relationship score
func (n *Neighbour) Relationship() int {
	return n.relationship
}

// Distance returns the trade distance, always positive
func (n *Neighbour) Distance() int {
	return n.distance
}

// Scarcity returns how scarce a commodity is for this neighbour,
// 0 when untracked.
func (n *Neighbour) Scarcity(commodity string) float64 {
	return n.scarcity[commodity]
}

// NeighbourSet is the fixed collection of neighbouring powers, immutable
// during simulation.
type NeighbourSet struct {
	neighbours map[string]*Neighbour
}

// NewNeighbourSet creates a set from the given neighbours
func NewNeighbourSet(neighbours ...*Neighbour) *NeighbourSet {
	set := &NeighbourSet{neighbours: make(map[string]*Neighbour, len(neighbours))}
	for _, n := range neighbours {
		set.neighbours[n.Name()] = n
	}
	return set
}

// Names returns the neighbour names in sorted order
func (s *NeighbourSet) Names() []string {
	names := make([]string, 0, len(s.neighbours))
	for name := range s.neighbours {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named neighbour
func (s *NeighbourSet) Get(name string) (*Neighbour, bool) {
	n, ok := s.neighbours[name]
	return n, ok
}

// Len returns the number of neighbours in the set
func (s *NeighbourSet) Len() int {
	return len(s.neighbours)
}
