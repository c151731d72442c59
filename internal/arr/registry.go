package arr

import (
	"github.com/charmbracelet/log"
)

// Endpoint is the pair of values needed to reach one service instance.
type Endpoint struct {
	URL    string
	APIKey string
}

// Registry holds one immutable client per configured family. Families absent
// from the endpoint set are simply unavailable; asking for them fails before
// any network call is attempted.
type Registry struct {
	clients map[Service]*Client
	logger  *log.Logger
}

// NewRegistry builds clients for every configured endpoint. opts are applied
// to every client (tests use this to inject fake transports).
func NewRegistry(endpoints map[Service]Endpoint, logger *log.Logger, opts ...ClientOption) *Registry {
	clients := make(map[Service]*Client, len(endpoints))
	for service, ep := range endpoints {
		clients[service] = NewClient(service, ep.URL, ep.APIKey, logger, opts...)
		logger.Info("configured service", "service", service, "url", ep.URL)
	}
	return &Registry{clients: clients, logger: logger}
}

// Available reports whether the family has a configured client.
func (r *Registry) Available(s Service) bool {
	_, ok := r.clients[s]
	return ok
}

// Configured lists the configured families in stable order.
func (r *Registry) Configured() []Service {
	out := make([]Service, 0, len(r.clients))
	for _, s := range Services() {
		if r.Available(s) {
			out = append(out, s)
		}
	}
	return out
}

// Client returns the generic client for a family.
func (r *Registry) Client(s Service) (*Client, error) {
	c, ok := r.clients[s]
	if !ok {
		return nil, notConfiguredError(s)
	}
	return c, nil
}

// Sonarr returns the TV client.
func (r *Registry) Sonarr() (*SonarrClient, error) {
	c, err := r.Client(Sonarr)
	if err != nil {
		return nil, err
	}
	return &SonarrClient{c}, nil
}

// Radarr returns the movie client.
func (r *Registry) Radarr() (*RadarrClient, error) {
	c, err := r.Client(Radarr)
	if err != nil {
		return nil, err
	}
	return &RadarrClient{c}, nil
}

// Lidarr returns the music client.
func (r *Registry) Lidarr() (*LidarrClient, error) {
	c, err := r.Client(Lidarr)
	if err != nil {
		return nil, err
	}
	return &LidarrClient{c}, nil
}

// Readarr returns the book client.
func (r *Registry) Readarr() (*ReadarrClient, error) {
	c, err := r.Client(Readarr)
	if err != nil {
		return nil, err
	}
	return &ReadarrClient{c}, nil
}

// Prowlarr returns the indexer client.
func (r *Registry) Prowlarr() (*ProwlarrClient, error) {
	c, err := r.Client(Prowlarr)
	if err != nil {
		return nil, err
	}
	return &ProwlarrClient{c}, nil
}
