package recordhttp

type CreateResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
