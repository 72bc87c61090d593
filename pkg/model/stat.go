package model

import (
	"time"
)

type EmbedStats struct {
	TextureAnalysis  time.Duration `json:"texture_analysis"`
	CapacityPlanning time.Duration `json:"capacity_planning"`
	SlotSelection    time.Duration `json:"slot_selection"`
	BitEmbedding     time.Duration `json:"bit_embedding"`
}

type ExtractStats struct {
	TextureAnalysis  time.Duration `json:"texture_analysis"`
	CapacityPlanning time.Duration `json:"capacity_planning"`
	SlotSelection    time.Duration `json:"slot_selection"`
	BitExtraction    time.Duration `json:"bit_extraction"`
}

type CapacityReport struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	TotalBits    int `json:"total_bits"`
	PayloadBytes int `json:"payload_bytes"`
}
