package arr

// Typed views of the configuration-inspection payloads that are structurally
// identical across every family. Only the fields the dispatcher renders are
// named; unknown fields are ignored, never validated. Family-specific
// entities (series, movies, artists, authors) stay as raw maps because their
// vocabularies diverge.

// QualityProfile is one row of /qualityprofile.
type QualityProfile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	UpgradeAllowed bool   `json:"upgradeAllowed"`
}

// QualityDefinition is one row of /qualitydefinition.
type QualityDefinition struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	MinSize float64 `json:"minSize"`
	MaxSize float64 `json:"maxSize"`
}

// MetadataProfile is one row of /metadataprofile (Lidarr and Readarr only).
type MetadataProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HealthCheck is one row of /health.
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl"`
}

// RootFolder is one row of /rootfolder.
type RootFolder struct {
	ID         int64  `json:"id"`
	Path       string `json:"path"`
	Accessible bool   `json:"accessible"`
	FreeSpace  int64  `json:"freeSpace"`
}

// DownloadClient is one row of /downloadclient.
type DownloadClient struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Implementation string `json:"implementation"`
	Enable         bool   `json:"enable"`
	Priority       int    `json:"priority"`
}

// Tag is one row of /tag.
type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Indexer is one row of /indexer.
type Indexer struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Implementation string `json:"implementation"`
	Protocol       string `json:"protocol"`
	EnableRss      bool   `json:"enableRss"`
	Priority       int    `json:"priority"`
}

// QueueItem is one record of the paginated /queue collection.
type QueueItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Size     float64 `json:"size"`
	SizeLeft float64 `json:"sizeleft"`
	TimeLeft string  `json:"timeleft"`
	Indexer  string  `json:"indexer"`
	Protocol string  `json:"protocol"`
}

// QueuePage is the envelope of /queue.
type QueuePage struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// CommandResponse is the acknowledgement of a POST /command. Commands run
// asynchronously on the remote side; the id is a tracking handle, not a
// completion guarantee, and is returned to the caller unchanged.
type CommandResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
