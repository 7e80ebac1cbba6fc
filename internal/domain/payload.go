package domain

// BookPayload is the request body accepted by create and update.
// Unknown fields such as id or finished are ignored by the decoder.
type BookPayload struct {
	Name      string `json:"name"`
	Year      Year   `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

// Validate runs the payload checks in order and returns the first failure
// as a *ValidationError tagged with action.
func (p BookPayload) Validate(action Action) error {
	if p.Name == "" {
		return &ValidationError{Action: action, Reason: ReasonMissingName}
	}
	if p.ReadPage > p.PageCount {
		return &ValidationError{Action: action, Reason: ReasonReadPageExceedsPageCount}
	}
	return nil
}
