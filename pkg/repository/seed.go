package repository

import (
	"os"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Seed describes directory contents loaded into the in-memory gateway
// at startup, for demo and development use
type Seed struct {
	Groups []SeedGroup  `yaml:"groups"`
	People []SeedPerson `yaml:"people"`
}

// SeedGroup is one seeded group with its relations
type SeedGroup struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	LinkedObject string   `yaml:"linked_object,omitempty"`
	Subgroups    []string `yaml:"subgroups,omitempty"`
	Members      []string `yaml:"members,omitempty"`
}

// SeedPerson is one seeded person
type SeedPerson struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// LoadSeedFile reads a seed definition from a YAML file
func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read seed file",
			goerr.V("path", path))
	}

	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse seed file",
			goerr.V("path", path))
	}
	return &seed, nil
}

// Apply loads the seed into the in-memory directory. Entries without
// an ID get a generated one; relation lists refer to seeded IDs.
func (s *Seed) Apply(m *Memory) error {
	for i := range s.People {
		p := &s.People[i]
		if p.Name == "" {
			return goerr.New("seed person has no name", goerr.V("index", i))
		}
		if p.ID == "" {
			p.ID = types.NewPersonID().String()
		}
		m.AddPerson(model.PersonSummary{
			ID:    types.PersonID(p.ID),
			Name:  p.Name,
			Email: p.Email,
		})
	}

	for i := range s.Groups {
		g := &s.Groups[i]
		if g.Name == "" {
			return goerr.New("seed group has no name", goerr.V("index", i))
		}
		if g.ID == "" {
			g.ID = types.NewGroupID().String()
		}
		m.AddGroup(model.GroupSummary{
			ID:   types.GroupID(g.ID),
			Name: g.Name,
		}, g.LinkedObject)
	}

	// relations wired after all groups exist
	for _, g := range s.Groups {
		if len(g.Subgroups) > 0 {
			ids := make([]types.GroupID, 0, len(g.Subgroups))
			for _, id := range g.Subgroups {
				ids = append(ids, types.GroupID(id))
			}
			m.SetSubgroups(types.GroupID(g.ID), ids)
		}
		if len(g.Members) > 0 {
			ids := make([]types.PersonID, 0, len(g.Members))
			for _, id := range g.Members {
				ids = append(ids, types.PersonID(id))
			}
			m.SetMembers(types.GroupID(g.ID), ids)
		}
	}

	return nil
}
