package api

type StegParams struct {
	KMax         int   `json:"k_max"`
	Thresholds   []int `json:"thresholds"`
	LbpRadius    int   `json:"lbp_radius"`
	LbpNeighbors int   `json:"lbp_neighbors"`
}

type EmbedImageRequest struct {
	CoverImage []byte     `json:"cover_image"`
	Key        []byte     `json:"key"`
	Payload    []byte     `json:"payload"`
	Params     StegParams `json:"params"`
}

type ExtractImageRequest struct {
	StegoImage []byte     `json:"stego_image"`
	Key        []byte     `json:"key"`
	Params     StegParams `json:"params"`
}

type CapacityImageRequest struct {
	CoverImage []byte     `json:"cover_image"`
	Params     StegParams `json:"params"`
}

type Error struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}
