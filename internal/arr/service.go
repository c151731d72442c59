package arr

import "strings"

// Service identifies one of the supported *arr service families. The tag is
// carried explicitly alongside every call; it is never recovered from a tool
// name or any other string.
type Service string

const (
	Sonarr   Service = "sonarr"
	Radarr   Service = "radarr"
	Lidarr   Service = "lidarr"
	Readarr  Service = "readarr"
	Prowlarr Service = "prowlarr"
)

// Services lists every known family in stable order.
func Services() []Service {
	return []Service{Sonarr, Radarr, Lidarr, Readarr, Prowlarr}
}

// APIVersion returns the version segment of the family's REST API path.
// Sonarr and Radarr speak v3; the rest speak v1.
func (s Service) APIVersion() string {
	switch s {
	case Sonarr, Radarr:
		return "v3"
	default:
		return "v1"
	}
}

// HasMetadataProfiles reports whether the family exposes /metadataprofile.
// Only Lidarr and Readarr do.
func (s Service) HasMetadataProfiles() bool {
	return s == Lidarr || s == Readarr
}

func (s Service) String() string {
	return string(s)
}

func envPrefix(s Service) string {
	return strings.ToUpper(string(s))
}
