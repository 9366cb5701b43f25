package config

import (
	"context"
	"os"

	"github.com/groupdesk/groupdesk/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Authz holds authorization policy configuration
type Authz struct {
	PolicyPath string
}

// Flags returns CLI flags for Authz configuration
func (a *Authz) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "authz-policy",
			Usage:       "YAML policy file listing admins allowed to delete groups",
			Category:    "Authorization",
			Sources:     cli.EnvVars("GROUPDESK_AUTHZ_POLICY"),
			Destination: &a.PolicyPath,
		},
	}
}

// Configure loads the policy. Without a policy file every actor is
// allowed, which is only acceptable for local development; a warning
// is logged.
func (a *Authz) Configure(ctx context.Context) (*model.Policy, error) {
	if a.PolicyPath == "" {
		ctxlog.From(ctx).Warn("No authorization policy configured, every actor may delete groups")
		return &model.Policy{Admins: []string{"*"}}, nil
	}

	data, err := os.ReadFile(a.PolicyPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file",
			goerr.V("path", a.PolicyPath))
	}

	var policy model.Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, goerr.Wrap(err, "failed to parse policy file",
			goerr.V("path", a.PolicyPath))
	}
	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid policy",
			goerr.V("path", a.PolicyPath))
	}

	return &policy, nil
}
