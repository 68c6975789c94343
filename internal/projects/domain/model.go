package domain

import "time"

// Project is a single video project assembled by a client: the source text,
// the chosen dialect/voice, and the generation status. It is storage-agnostic
// and shared across the repository and HTTP layers.
type Project struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Dialect   string    `json:"dialect,omitempty"`
	Voice     string    `json:"voice,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	VideoURL  string    `json:"video_url,omitempty"`
}

// Status constants. A project only ever moves forward through these.
const (
	StatusDraft      = "draft"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

var statusRank = map[string]int{
	StatusDraft:      0,
	StatusProcessing: 1,
	StatusCompleted:  2,
}

// ValidStatus reports whether s is one of the known project statuses.
func ValidStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// StatusMovesForward reports whether changing a project from to next keeps the
// draft -> processing -> completed ordering. Writing the same status again is
// allowed so concurrent generation requests do not fail each other.
func StatusMovesForward(from, next string) bool {
	return statusRank[next] >= statusRank[from]
}

// Update carries the fields a store mutation may change. Nil means "leave as
// is"; text, dialect and voice are immutable after creation and have no entry.
type Update struct {
	Status   *string
	VideoURL *string
}
