package domain

// SchoolRequirements is the assistant's structured school criteria.
type SchoolRequirements struct {
	Required           bool     `json:"required"`
	Gender             string   `json:"gender,omitempty"`
	Levels             []string `json:"levels,omitempty"`
	MaxDistanceMinutes int      `json:"max_distance_minutes,omitempty"`
}

// UniversityRequirements is the assistant's structured university criteria.
type UniversityRequirements struct {
	Required           bool   `json:"required"`
	UniversityName     string `json:"university_name,omitempty"`
	MaxDistanceMinutes int    `json:"max_distance_minutes,omitempty"`
}

// SearchCriteria is the structured criteria object the assistant service
// extracts from free text.
type SearchCriteria struct {
	SchoolRequirements     *SchoolRequirements     `json:"school_requirements,omitempty"`
	UniversityRequirements *UniversityRequirements `json:"university_requirements,omitempty"`
}

// AssistantQuery is a request to the assistant collaborator.
type AssistantQuery struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	// Mode selects the requested result set: exact matches only, or
	// similar listings when exact ones are scarce.
	Mode string `json:"mode"`
}

// AssistantReply is either a clarification prompt or extracted criteria
// plus a result listing set.
type AssistantReply struct {
	NeedsClarification   bool            `json:"needs_clarification"`
	ClarificationMessage string          `json:"clarification_message,omitempty"`
	Criteria             *SearchCriteria `json:"criteria,omitempty"`
	Results              []Listing       `json:"results,omitempty"`
	SearchMode           string          `json:"search_mode,omitempty"`
}
