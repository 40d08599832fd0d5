package metadomain

type AdCreativeRef struct {
	ID string `json:"id"`
}

type Ad struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Status          string         `json:"status"`
	EffectiveStatus string         `json:"effective_status"`
	AdsetID         string         `json:"adset_id"`
	Creative        *AdCreativeRef `json:"creative,omitempty"`
}

type Creative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	Body         string `json:"body"`
}
