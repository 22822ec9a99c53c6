package dto

type SocialAccountRequest struct {
	Platform    string `json:"platform"`
	Handle      string `json:"handle"`
	AccessToken string `json:"access_token"`
}

type SocialAccountResponse struct {
	ID       uint   `json:"id"`
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

type MetricsResponse struct {
	Platform    string `json:"platform"`
	Handle      string `json:"handle"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	Posts       int64  `json:"posts"`
	Engagements int64  `json:"engagements"`
	FetchedAt   int64  `json:"fetched_at"`
	Cached      bool   `json:"cached"`
}

type ScheduledPostRequest struct {
	AccountID uint   `json:"account_id"`
	Body      string `json:"body"`
	PublishAt int64  `json:"publish_at"`
}

type ScheduledPostResponse struct {
	ID          uint   `json:"id"`
	AccountID   uint   `json:"account_id"`
	Body        string `json:"body"`
	PublishAt   int64  `json:"publish_at"`
	Status      string `json:"status"`
	Attempts    int    `json:"attempts"`
	LastError   string `json:"last_error,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	PublishedAt int64  `json:"published_at,omitempty"`
}
