package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tsteg/api"
	"tsteg/internal/logging"
	"tsteg/pkg/steg"
)

// ExtractImageHandler godoc
//
// @Summary Extract a secret payload from a stego image
// @Description Recovers the payload previously embedded with the same key and steg parameters. Fails with integrity_failure when the key is wrong or the image was altered, and with payload_truncated when the image cannot hold the declared payload.
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Stego image, secret key and steg parameters"
// @Success 200 {object} api.ExtractImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract/image [post]
func ExtractImageHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	stegoGrid, err := gridFromImageBytes(requestBody.StegoImage)
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	extractor, err := steg.NewExtractor(stegoGrid, stegConfigFromParams(requestBody.Params))
	if err != nil {
		abortWithStegError(ctx, logger, err)
		return
	}

	payload, err := extractor.Extract(requestBody.Key)
	if err != nil {
		abortWithStegError(ctx, logger, err)
		return
	}

	logger.With("stats", toHumanizedExtractStats(extractor.Stats())).Info("Image extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractImageResponse{
		Payload: payload,
		Stats:   extractor.Stats(),
	})
}
