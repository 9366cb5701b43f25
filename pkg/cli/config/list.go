package config

import (
	"github.com/urfave/cli/v3"
)

// List holds group-list tuning
type List struct {
	PageSize  int
	CacheSize int
}

// Flags returns CLI flags for List configuration
func (l *List) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "page-size",
			Usage:       "Groups per page",
			Category:    "List",
			Value:       20,
			Sources:     cli.EnvVars("GROUPDESK_PAGE_SIZE"),
			Destination: &l.PageSize,
		},
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "Cached group pages (0 disables the page cache)",
			Category:    "List",
			Value:       128,
			Sources:     cli.EnvVars("GROUPDESK_CACHE_SIZE"),
			Destination: &l.CacheSize,
		},
	}
}
