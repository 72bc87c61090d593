package cli

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"tsteg/pkg/grid"
)

// The carrier channel must be lossless between embed and extract, so stego
// output is limited to PNG, BMP and TIFF. Covers may additionally be read
// from JPEG, since the source image is re-encoded losslessly anyway.
var pngCompressionMapping = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"fast":    png.BestSpeed,
	"best":    png.BestCompression,
}

func loadGridFromFile(filePath string) (*grid.Grid, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	srcImage, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	} else if err = f.Close(); err != nil {
		return nil, err
	}

	return grid.FromImage(srcImage), nil
}

func saveGridToFile(g *grid.Grid, filePath, pngCompression string) error {
	outputFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer outputFile.Close()

	img := g.ToImage()
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".bmp":
		return bmp.Encode(outputFile, img)
	case ".tif", ".tiff":
		return tiff.Encode(outputFile, img, nil)
	case ".png":
		mappedCompression, found := pngCompressionMapping[pngCompression]
		if !found {
			mappedCompression = png.DefaultCompression
		}
		enc := png.Encoder{CompressionLevel: mappedCompression}
		return enc.Encode(outputFile, img)
	default:
		return fmt.Errorf("unsupported output format %q, use png, bmp or tiff (the carrier must stay lossless)", filepath.Ext(filePath))
	}
}
