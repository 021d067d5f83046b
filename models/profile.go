package models

// Profile holds locally persisted client preferences. World state is never
// persisted; the server is the only authority on it.
type Profile struct {
	ServerURL   string `json:"server_url"`
	ScrollStep  int    `json:"scroll_step"`
	Designation string `json:"designation"`
}

// DefaultProfile returns the preferences used on first run.
func DefaultProfile() *Profile {
	return &Profile{
		ServerURL:   "ws://localhost:8000/ws",
		ScrollStep:  4,
		Designation: "dig",
	}
}
