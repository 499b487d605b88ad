package application

import (
	"errors"
	"fmt"

	"github.com/havenrealty/listings-api/internal/catalog/domain"
)

var (
	// ErrDuplicateID is returned when two records of the same kind share an identifier.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownAgent is returned when a listing references an agent that is not in the roster.
	ErrUnknownAgent = errors.New("unknown agent")
)

// Store is the immutable catalogue snapshot every query runs against.
// It is built once at startup and never mutated, so it is safe for concurrent use.
type Store struct {
	properties    []domain.Property
	agents        []domain.Agent
	propertyIndex map[string]int
	agentIndex    map[string]int
}

// NewStore copies the given records and enforces unique ids and agent references.
func NewStore(properties []domain.Property, agents []domain.Agent) (*Store, error) {
	s := &Store{
		properties:    make([]domain.Property, 0, len(properties)),
		agents:        make([]domain.Agent, 0, len(agents)),
		propertyIndex: make(map[string]int, len(properties)),
		agentIndex:    make(map[string]int, len(agents)),
	}

	for _, a := range agents {
		if _, ok := s.agentIndex[a.ID]; ok {
			return nil, fmt.Errorf("agent %q: %w", a.ID, ErrDuplicateID)
		}
		s.agentIndex[a.ID] = len(s.agents)
		s.agents = append(s.agents, a.Clone())
	}

	for _, p := range properties {
		if _, ok := s.propertyIndex[p.ID]; ok {
			return nil, fmt.Errorf("property %q: %w", p.ID, ErrDuplicateID)
		}
		if _, ok := s.agentIndex[p.AgentID]; !ok {
			return nil, fmt.Errorf("property %q references agent %q: %w", p.ID, p.AgentID, ErrUnknownAgent)
		}
		s.propertyIndex[p.ID] = len(s.properties)
		s.properties = append(s.properties, p.Clone())
	}

	return s, nil
}

// Properties returns every listing in catalogue order.
func (s *Store) Properties() []domain.Property {
	return cloneProperties(s.properties)
}

// Agents returns the roster in catalogue order.
func (s *Store) Agents() []domain.Agent {
	out := make([]domain.Agent, len(s.agents))
	for i, a := range s.agents {
		out[i] = a.Clone()
	}
	return out
}

// PropertyByID looks a listing up by id. Unknown ids report false.
func (s *Store) PropertyByID(id string) (domain.Property, bool) {
	idx, ok := s.propertyIndex[id]
	if !ok {
		return domain.Property{}, false
	}
	return s.properties[idx].Clone(), true
}

// AgentByID looks an agent up by id. Unknown ids report false.
func (s *Store) AgentByID(id string) (domain.Agent, bool) {
	idx, ok := s.agentIndex[id]
	if !ok {
		return domain.Agent{}, false
	}
	return s.agents[idx].Clone(), true
}

// PropertiesByAgent returns the listings assigned to agentID.
func (s *Store) PropertiesByAgent(agentID string) []domain.Property {
	return s.collect(func(p *domain.Property) bool { return p.AgentID == agentID }, 0)
}

// Featured returns the promoted listings that are still available.
func (s *Store) Featured() []domain.Property {
	return s.collect(func(p *domain.Property) bool {
		return p.IsFeatured && p.Status == domain.StatusAvailable
	}, 0)
}

// Similar returns up to limit available listings of the same type as id,
// excluding id itself. A non-positive limit means no limit.
func (s *Store) Similar(id string, limit int) []domain.Property {
	idx, ok := s.propertyIndex[id]
	if !ok {
		return []domain.Property{}
	}
	target := s.properties[idx]
	return s.collect(func(p *domain.Property) bool {
		return p.ID != target.ID &&
			p.PropertyType == target.PropertyType &&
			p.Status == domain.StatusAvailable
	}, limit)
}

// collect scans in catalogue order and returns copies of matching listings.
// The result is never nil.
func (s *Store) collect(match func(*domain.Property) bool, limit int) []domain.Property {
	out := []domain.Property{}
	for i := range s.properties {
		if limit > 0 && len(out) == limit {
			break
		}
		if match(&s.properties[i]) {
			out = append(out, s.properties[i].Clone())
		}
	}
	return out
}

func cloneProperties(in []domain.Property) []domain.Property {
	out := make([]domain.Property, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
