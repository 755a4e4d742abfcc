package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Server represents a virtual server instance across providers
type Server struct {
	// Core fields (common across all providers)
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Flavor    string    `json:"flavor"`
	Image     string    `json:"image,omitempty"`
	Provider  string    `json:"provider"`

	// Networks maps a network name to the addresses attached on it.
	Networks map[string][]string `json:"networks,omitempty"`

	// Metadata holds provider-specific fields
	// Examples: region, architecture, admin_password.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NetworksString renders the network attachments as
// "net-a=10.0.0.2,10.0.0.3; net-b=1.2.3.4", sorted by network name.
// An instance that has no addresses yet renders as "(none)".
func (s *Server) NetworksString() string {
	if len(s.Networks) == 0 {
		return "(none)"
	}

	names := make([]string, 0, len(s.Networks))
	for name := range s.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, strings.Join(s.Networks[name], ",")))
	}
	return strings.Join(parts, "; ")
}
