package ws

import (
	"encoding/json"
	"time"
)

const (
	MessageEstimate             = "estimate"
	MessageError                = "error"
	MessageEligibilityRefreshed = "eligibility_refreshed"
)

type EligibilityRefreshedEvent struct {
	Type      string `json:"type"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

// NotifyEligibilityRefreshed tells open authoring sessions that cached
// counts were recomputed.
func (h *Hub) NotifyEligibilityRefreshed(jobs int) {
	if h == nil {
		return
	}
	b, err := json.Marshal(EligibilityRefreshedEvent{
		Type:      MessageEligibilityRefreshed,
		Jobs:      jobs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}
