package navigation

// Decision is the outcome of navigating to Path.
type Decision struct {
	Path         string `json:"path"`
	Route        string `json:"route"`
	Allowed      bool   `json:"allowed"`
	Redirect     string `json:"redirect"`
	RedirectPath string `json:"redirectPath"`
}
