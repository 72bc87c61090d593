package server

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"tsteg/api"
	"tsteg/pkg/config"
	"tsteg/pkg/grid"
)

func stegConfigFromParams(params api.StegParams) config.StegConfig {
	cfg := config.StegConfig{
		KMax:         params.KMax,
		Thresholds:   params.Thresholds,
		LBPRadius:    params.LbpRadius,
		LBPNeighbors: params.LbpNeighbors,
	}
	cfg.PopulateUnsetConfigVars()
	return cfg
}

func gridFromImageBytes(imageBytes []byte) (*grid.Grid, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}
	return grid.FromImage(img), nil
}
