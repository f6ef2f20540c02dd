package domain

// Status represents the current state of a submission session
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// DownloadResult is the payload returned by the download API on success
type DownloadResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
}

// Session holds the state of a single submission form. Exactly one status
// is active at a time; Result and ErrorMessage are never both populated.
type Session struct {
	URL          string
	Status       Status
	Result       *DownloadResult
	ErrorMessage string
}

// NewSession creates a session in the idle state
func NewSession() *Session {
	return &Session{Status: StatusIdle}
}

// MarkLoading transitions the session to loading and clears any previous
// result or error
func (s *Session) MarkLoading() {
	s.Status = StatusLoading
	s.Result = nil
	s.ErrorMessage = ""
}

// MarkSuccess stores the result payload and transitions to success
func (s *Session) MarkSuccess(result *DownloadResult) {
	s.Status = StatusSuccess
	s.Result = result
	s.ErrorMessage = ""
}

// MarkFailed stores the error message and transitions to error
func (s *Session) MarkFailed(message string) {
	s.Status = StatusError
	s.ErrorMessage = message
	s.Result = nil
}

// MarkIdle returns to idle without touching the entered URL. Used for the
// silent empty-input submit.
func (s *Session) MarkIdle() {
	s.Status = StatusIdle
	s.Result = nil
	s.ErrorMessage = ""
}

// Reset clears the session back to a fresh idle state
func (s *Session) Reset() {
	s.URL = ""
	s.Status = StatusIdle
	s.Result = nil
	s.ErrorMessage = ""
}

// IsLoading checks if a submission is currently in flight
func (s *Session) IsLoading() bool {
	return s.Status == StatusLoading
}
