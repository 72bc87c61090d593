package api

import "tsteg/pkg/model"

type EmbedImageResponse struct {
	StegoImage []byte           `json:"stego_image"`
	Stats      model.EmbedStats `json:"stats"`
}

type ExtractImageResponse struct {
	Payload []byte             `json:"payload"`
	Stats   model.ExtractStats `json:"stats"`
}

type CapacityImageResponse struct {
	Capacity model.CapacityReport `json:"capacity"`
}
