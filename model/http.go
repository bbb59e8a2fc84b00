package model

type UpdateRequestBody struct {
	Path  string `json:"path"`
	Notes string `json:"notes"`
}

type ProcessRequestBody struct {
	Path string `json:"path"`
}

type StageResponse struct {
	OK     bool   `json:"ok"`
	Kind   string `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
