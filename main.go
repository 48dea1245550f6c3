package main

import (
	"github.com/allape/spritecut/config"
	"github.com/allape/spritecut/factory"
	"github.com/allape/spritecut/logger"
	"github.com/allape/spritecut/preview"
	"github.com/spf13/cobra"
	"os/signal"
	"syscall"
)

var log = logger.New("[main]")

var flags struct {
	src        string
	output     string
	concurrent bool
	preview    bool
}

var rootCmd = &cobra.Command{
	Use:   "spritecut [config.toml]",
	Short: "Slice a 5x2 sprite sheet into idle and walk frames",
	Long: `spritecut cuts a sprite sheet laid out as 5 columns by 2 rows into ten PNG
frames named {prefix}-idle-1.png ... {prefix}-walk-5.png.
Settings come from the optional TOML file, the environment and the flags,
flags win.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flags.src, "src", "", "sprite sheet to slice")
	rootCmd.Flags().StringVar(&flags.output, "output", "", "directory the frames are written to")
	rootCmd.Flags().BoolVar(&flags.concurrent, "concurrent", false, "write frames in parallel")
	rootCmd.Flags().BoolVar(&flags.preview, "preview", false, "also render GIF and contact sheet previews")
}

func run(cmd *cobra.Command, args []string) error {
	conf, err := config.GetConfig(args)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("src") {
		conf.Sprite.Src = flags.src
	}
	if cmd.Flags().Changed("output") {
		conf.Output.Dir = flags.output
	}
	if cmd.Flags().Changed("concurrent") {
		conf.Output.Concurrent = flags.concurrent
	}
	if cmd.Flags().Changed("preview") {
		conf.Preview.Enabled = flags.preview
	}

	extractor, err := factory.ExtractorFromConfig(conf)
	if err != nil {
		return err
	}

	previewOptions, err := factory.PreviewFromConfig(conf)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := extractor.Extract(ctx)
	if err != nil {
		return err
	}

	if previewOptions != nil {
		paths, err := preview.Render(result.Frames, previewOptions)
		if err != nil {
			return err
		}
		log.Println("preview written:", paths)
	}

	log.Println("done,", len(result.Paths), "frames in", conf.Output.Dir)

	return nil
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatalln(err)
	}
}
