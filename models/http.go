package models

// PushResponse is returned by POST /api/sync/push.
type PushResponse struct {
	// Pushed is false when nothing changed since the last push.
	Pushed bool `json:"pushed"`
}

// ConflictsResponse is returned by GET /api/sync/conflicts.
type ConflictsResponse struct {
	Conflicts []Conflict `json:"conflicts"`
	Length    int        `json:"length"`
}

// ResolveRequest is the body of POST /api/sync/conflicts/resolve.
type ResolveRequest struct {
	Conflict   Conflict   `json:"conflict"`
	Resolution Resolution `json:"resolution"`
}

// ResolveResponse reports whether the push that follows a resolution
// uploaded a snapshot.
type ResolveResponse struct {
	Pushed bool `json:"pushed"`
}
