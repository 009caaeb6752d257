package dto

type PushSubscribeRequest struct {
	Endpoint  string `json:"endpoint"`
	P256dh    string `json:"p256dh"`
	Auth      string `json:"auth"`
	UserAgent string `json:"userAgent,omitempty"`
}

type PushSendRequest struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

type PushSendResponse struct {
	Sent  int    `json:"sent"`
	Title string `json:"title"`
}

type VAPIDKeyResponse struct {
	PublicKey string `json:"publicKey"`
}
