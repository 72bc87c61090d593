package server

import (
	"tsteg/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	TextureAnalysisHuman  string `json:"texture_analysis_human"`
	CapacityPlanningHuman string `json:"capacity_planning_human"`
	SlotSelectionHuman    string `json:"slot_selection_human"`
	BitEmbeddingHuman     string `json:"bit_embedding_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	TextureAnalysisHuman  string `json:"texture_analysis_human"`
	CapacityPlanningHuman string `json:"capacity_planning_human"`
	SlotSelectionHuman    string `json:"slot_selection_human"`
	BitExtractionHuman    string `json:"bit_extraction_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:            embedStats,
		TextureAnalysisHuman:  embedStats.TextureAnalysis.String(),
		CapacityPlanningHuman: embedStats.CapacityPlanning.String(),
		SlotSelectionHuman:    embedStats.SlotSelection.String(),
		BitEmbeddingHuman:     embedStats.BitEmbedding.String(),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:          extractStats,
		TextureAnalysisHuman:  extractStats.TextureAnalysis.String(),
		CapacityPlanningHuman: extractStats.CapacityPlanning.String(),
		SlotSelectionHuman:    extractStats.SlotSelection.String(),
		BitExtractionHuman:    extractStats.BitExtraction.String(),
	}
}
