package server

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

// StartServer godoc
// @title tsteg API
// @version 1.0
// @description An API for texture-adaptive keyed steganography on images
// @BasePath /api/v1
func StartServer(port string) error {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed/image", EmbedImageHandler)
	v1.POST("/extract/image", ExtractImageHandler)
	v1.POST("/capacity/image", CapacityImageHandler)

	return r.Run(fmt.Sprintf(":%s", port))
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"request_size\": \"%s\", \"request_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
