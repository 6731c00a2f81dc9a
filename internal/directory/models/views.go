package models

// ContactLinks are the delegated actions offered for a reachable number.
type ContactLinks struct {
	Call     string `json:"call"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// DonorView is a donor as presented in a search result.
// Links are present only for available donors.
type DonorView struct {
	Donor
	RecentlyDonated bool          `json:"recently_donated"`
	Links           *ContactLinks `json:"links,omitempty"`
}

// RequestView decorates an emergency request for display.
type RequestView struct {
	EmergencyRequest
	ResponseWindow string       `json:"response_window"`
	Posted         string       `json:"posted"`
	Links          ContactLinks `json:"links"`
}

// HelplineView is a helpline with its dial link.
type HelplineView struct {
	Helpline
	Call string `json:"call"`
}

// Summary carries the home page counters.
type Summary struct {
	TotalDonors     int `json:"total_donors"`
	AvailableDonors int `json:"available_donors"`
	Districts       int `json:"districts"`
	UrgentRequests  int `json:"urgent_requests"`
}
