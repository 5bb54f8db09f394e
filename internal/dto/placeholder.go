package dto

// EedmResource is the minimal shape of an integration-model resource that
// has no backing data in this system.
type EedmResource struct {
	ID    string `json:"id"`
	Code  string `json:"code,omitempty"`
	Title string `json:"title,omitempty"`
}
