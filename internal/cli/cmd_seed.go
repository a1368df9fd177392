package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/stellarnotes/internal/seed"
	"github.com/stellarnotes/internal/service"
)

func newSeedCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample NASA images into the gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			result, err := seed.Run(service.NewGalleryService(rt.DB), seed.SampleImages, out)
			if err != nil {
				return err
			}
			rt.Log.Debug().Int("created", result.Created).Int("skipped", result.Skipped).Msg("seed finished")
			return nil
		},
	}
}
