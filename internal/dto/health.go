package dto

type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
}

type ComponentHealth struct {
	Status  string            `json:"status"`
	Engines map[Engine]string `json:"engines,omitempty"`
	Online  string            `json:"online,omitempty"`
}
