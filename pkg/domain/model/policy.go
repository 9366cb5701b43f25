package model

import (
	"github.com/groupdesk/groupdesk/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Policy describes who may delete groups. Loaded from a YAML file at
// startup; an entry of "*" grants every actor.
type Policy struct {
	Admins []string `yaml:"admins"`
}

// Validate validates the policy
func (p *Policy) Validate() error {
	if len(p.Admins) == 0 {
		return goerr.New("policy has no admins")
	}
	for _, a := range p.Admins {
		if a == "" {
			return goerr.New("policy contains an empty admin entry")
		}
	}
	return nil
}

// Allows reports whether the actor is granted delete permission
func (p *Policy) Allows(actor types.ActorID) bool {
	if actor == "" {
		return false
	}
	for _, a := range p.Admins {
		if a == "*" || a == actor.String() {
			return true
		}
	}
	return false
}
