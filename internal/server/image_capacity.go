package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tsteg/api"
	"tsteg/internal/logging"
	"tsteg/pkg/codec"
	"tsteg/pkg/model"
	"tsteg/pkg/steg"
)

// CapacityImageHandler godoc
//
// @Summary Report the adaptive embedding capacity of a cover image
// @Description Computes how many payload bits the cover image's busy regions can hold under the supplied steg parameters, without embedding anything.
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Cover image and steg parameters"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(ctx *gin.Context) {
	var requestBody api.CapacityImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image capacity request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	coverGrid, err := gridFromImageBytes(requestBody.CoverImage)
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	embedder, err := steg.NewEmbedder(coverGrid, stegConfigFromParams(requestBody.Params))
	if err != nil {
		abortWithStegError(ctx, logger, err)
		return
	}

	totalBits, err := embedder.Capacity()
	if err != nil {
		abortWithStegError(ctx, logger, err)
		return
	}

	payloadBytes := (totalBits - codec.HeaderBits) / 8
	if payloadBytes < 0 {
		payloadBytes = 0
	}

	ctx.JSON(http.StatusOK, api.CapacityImageResponse{
		Capacity: model.CapacityReport{
			Width:        coverGrid.Width,
			Height:       coverGrid.Height,
			TotalBits:    totalBits,
			PayloadBytes: payloadBytes,
		},
	})
}
