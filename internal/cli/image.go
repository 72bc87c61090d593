package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tsteg/pkg/codec"
	"tsteg/pkg/config"
	"tsteg/pkg/steg"
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs keyed adaptive steganography operations on images",
		Example: "tsteg image embed --image cover.png --output-file stego.png --payload-file secret.bin --key hunter2",
	}

	imageCmd.AddCommand(embedImageCommand(), extractImageCommand(), capacityImageCommand())
	return imageCmd
}

type stegOpts struct {
	kMax         int
	thresholds   []int
	lbpRadius    int
	lbpNeighbors int
}

func (o stegOpts) toStegConfig() config.StegConfig {
	cfg := config.StegConfig{
		KMax:         o.kMax,
		Thresholds:   o.thresholds,
		LBPRadius:    o.lbpRadius,
		LBPNeighbors: o.lbpNeighbors,
	}
	cfg.PopulateUnsetConfigVars()
	return cfg
}

func registerStegFlags(cmd *cobra.Command, opts *stegOpts) {
	cmd.Flags().IntVar(&opts.kMax, "k-max", config.DefaultKMax, "Maximum bit-planes to use per channel in busy pixels. Higher means more capacity and more distortion")
	cmd.Flags().IntSliceVar(&opts.thresholds, "thresholds", nil, "Ordered texture-score cut-points partitioning scores into capacity buckets. Defaults to a linear split")
	cmd.Flags().IntVar(&opts.lbpRadius, "lbp-radius", config.DefaultLBPRadius, "Radius of the LBP texture neighborhood")
	cmd.Flags().IntVar(&opts.lbpNeighbors, "lbp-neighbors", config.DefaultLBPNeighbors, "Number of LBP neighbors to sample (4, 8 or 16)")
}

type embedImageOpts struct {
	sourceImage    string
	outputImage    string
	payloadFile    string
	key            string
	pngCompression string
	compress       bool
	encrypt        bool
	steg           stegOpts
}

func embedImageCommand() *cobra.Command {
	opts := embedImageOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Example: "tsteg image embed --image cover.png --output-file stego.png --payload-file secret.bin --key hunter2",
		Short:   "Embed a secret payload into an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EmbedPayloadInImage(opts)
		},
	}

	embedCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to embed the payload into (the original is not touched)")
	embedCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Path for the stego image that will be generated (png, bmp or tiff)")
	embedCmd.Flags().StringVar(&opts.payloadFile, "payload-file", "", "File with the secret payload to hide")
	embedCmd.Flags().StringVar(&opts.key, "key", "", "Shared secret key; extraction requires the same key")
	embedCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for png output. Options are default, none, fast, best")
	embedCmd.Flags().BoolVar(&opts.compress, "compress", false, "zstd-compress the payload before embedding")
	embedCmd.Flags().BoolVar(&opts.encrypt, "encrypt", false, "AES-GCM encrypt the payload with a key derived from the secret key before embedding")
	registerStegFlags(embedCmd, &opts.steg)

	MarkFlagsRequired(embedCmd, "image", "output-file", "payload-file", "key")

	return embedCmd
}

func EmbedPayloadInImage(opts embedImageOpts) error {
	s := NewSpinner()
	s.Prefix = "Reading cover image and payload "
	s.Start()
	defer s.Stop()

	coverGrid, err := loadGridFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(opts.payloadFile)
	if err != nil {
		return err
	}

	payload, err = preparePayload(payload, []byte(opts.key), opts.compress, opts.encrypt)
	if err != nil {
		return err
	}

	s.Prefix = "Embedding payload "
	embedder, err := steg.NewEmbedder(coverGrid, opts.steg.toStegConfig())
	if err != nil {
		return err
	}

	stegoGrid, err := embedder.Embed([]byte(opts.key), payload)
	if err != nil {
		return err
	}

	s.Prefix = "Writing stego image "
	if err = saveGridToFile(stegoGrid, opts.outputImage, opts.pngCompression); err != nil {
		return err
	}

	s.Stop()
	PrintSuccess("Generated %s with %s of payload hidden inside", opts.outputImage, humanize.Bytes(uint64(len(payload))))
	stats := embedder.Stats()
	fmt.Printf("Texture analysis time: %s\n", stats.TextureAnalysis)
	fmt.Printf("Capacity planning time: %s\n", stats.CapacityPlanning)
	fmt.Printf("Slot selection time: %s\n", stats.SlotSelection)
	fmt.Printf("Bit embedding time: %s\n", stats.BitEmbedding)
	return nil
}

type extractImageOpts struct {
	sourceImage string
	outputFile  string
	key         string
	decompress  bool
	decrypt     bool
	steg        stegOpts
}

func extractImageCommand() *cobra.Command {
	opts := extractImageOpts{}

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "tsteg image extract --source stego.png --output-file secret.bin --key hunter2",
		Short:   "Extract a payload hidden in an image by tsteg",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExtractPayloadFromImage(opts)
		},
	}

	extractCmd.Flags().StringVar(&opts.sourceImage, "source", "", "Stego image generated by tsteg")
	extractCmd.Flags().StringVar(&opts.outputFile, "output-file", "", "Path to write the recovered payload to")
	extractCmd.Flags().StringVar(&opts.key, "key", "", "Shared secret key used during embedding")
	extractCmd.Flags().BoolVar(&opts.decompress, "decompress", false, "zstd-decompress the recovered payload (use when it was embedded with --compress)")
	extractCmd.Flags().BoolVar(&opts.decrypt, "decrypt", false, "AES-GCM decrypt the recovered payload (use when it was embedded with --encrypt)")
	registerStegFlags(extractCmd, &opts.steg)

	MarkFlagsRequired(extractCmd, "source", "output-file", "key")

	return extractCmd
}

func ExtractPayloadFromImage(opts extractImageOpts) error {
	s := NewSpinner()
	s.Prefix = "Reading stego image "
	s.Start()
	defer s.Stop()

	stegoGrid, err := loadGridFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	s.Prefix = "Extracting payload "
	extractor, err := steg.NewExtractor(stegoGrid, opts.steg.toStegConfig())
	if err != nil {
		return err
	}

	payload, err := extractor.Extract([]byte(opts.key))
	if err != nil {
		return err
	}

	payload, err = restorePayload(payload, []byte(opts.key), opts.decompress, opts.decrypt)
	if err != nil {
		return err
	}

	if err = os.WriteFile(opts.outputFile, payload, 0664); err != nil {
		return err
	}

	s.Stop()
	PrintSuccess("Recovered %s of payload into %s", humanize.Bytes(uint64(len(payload))), opts.outputFile)
	return nil
}

type capacityImageOpts struct {
	sourceImage string
	steg        stegOpts
}

func capacityImageCommand() *cobra.Command {
	opts := capacityImageOpts{}

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "tsteg image capacity --image cover.png --k-max 2",
		Short:   "Report the adaptive embedding capacity of a cover image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ReportImageCapacity(opts)
		},
	}

	capacityCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to analyze")
	registerStegFlags(capacityCmd, &opts.steg)

	MarkFlagsRequired(capacityCmd, "image")

	return capacityCmd
}

func ReportImageCapacity(opts capacityImageOpts) error {
	coverGrid, err := loadGridFromFile(opts.sourceImage)
	if err != nil {
		return err
	}

	cfg := opts.steg.toStegConfig()
	embedder, err := steg.NewEmbedder(coverGrid, cfg)
	if err != nil {
		return err
	}

	totalBits, err := embedder.Capacity()
	if err != nil {
		return err
	}

	payloadBytes := (totalBits - codec.HeaderBits) / 8
	if payloadBytes < 0 {
		payloadBytes = 0
	}

	wtr := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(wtr, "Image\tkMax\tCapacity (bits)\tMax payload")
	fmt.Fprintln(wtr, "-----\t----\t---------------\t-----------")
	fmt.Fprintf(wtr, "%dx%d\t%d\t%d\t%s\n", coverGrid.Width, coverGrid.Height, cfg.KMax, totalBits, humanize.Bytes(uint64(payloadBytes)))
	return wtr.Flush()
}
