package server

import (
	"bytes"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"tsteg/api"
	"tsteg/internal/logging"
	"tsteg/pkg/steg"
)

// EmbedImageHandler godoc
//
// @Summary Embed a secret payload into the supplied cover image
// @Description Hides the payload in visually busy regions of the cover image, placing bits in a key-derived pseudorandom order, and returns the stego image as a PNG. Extraction requires the same key and params.
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.EmbedImageRequest true "Cover image, secret key, payload and steg parameters"
// @Success 200 {object} api.EmbedImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed/image [post]
func EmbedImageHandler(ctx *gin.Context) {
	var requestBody api.EmbedImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image embed request")

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

	stegoGrid, err := embedder.Embed(requestBody.Key, requestBody.Payload)
	if err != nil {
		abortWithStegError(ctx, logger, err)
		return
	}

	// Best compression to reduce bandwidth costs, since lower compression
	// results in huge images.
	stegoImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.CoverImage)))
	pngEncoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err = pngEncoder.Encode(stegoImageBuffer, stegoGrid.ToImage()); err != nil {
		logger.WithError(err).Error("Error encoding stego image to PNG")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{Code: "image_encode_error", Error: "Error encoding stego image"})
		return
	}

	logger.With("stats", toHumanizedEmbedStats(embedder.Stats())).Info("Image embedding was successful")

	ctx.JSON(http.StatusOK, api.EmbedImageResponse{
		StegoImage: stegoImageBuffer.Bytes(),
		Stats:      embedder.Stats(),
	})
}

func abortWithStegError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Steg operation failed")
	status, apiErr := classifyStegError(err)
	ctx.AbortWithStatusJSON(status, apiErr)
}
