package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftui/drift/pkg/carousel"
	"github.com/driftui/drift/pkg/imageref"
)

// inspectCommand creates the manifest inspection command.
func (c *CLI) inspectCommand() *cobra.Command {
	var assetNames []string

	cmd := &cobra.Command{
		Use:   "inspect <manifest.toml>",
		Short: "Validate and summarize a gallery manifest",
		Long: `Parse a TOML gallery manifest, validate every configuration section,
and report how each item's image reference resolves. Pass --asset to name
the images bundled with the host; anything that is neither remote nor a
bundled asset falls back to its symbol rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := carousel.LoadManifestFile(args[0])
			if err != nil {
				return err
			}
			if err := carousel.ValidateManifest(m); err != nil {
				printError("Manifest invalid: %v", err)
				return err
			}

			title := m.Title
			if title == "" {
				title = "(untitled)"
			}
			printSuccess("Manifest valid")
			printKeyValue("title", title)
			printKeyValue("items", fmt.Sprintf("%d", len(m.Items)))
			printKeyValue("stack", fmt.Sprintf("ratio %.2f · offset %.0f · visible %d",
				m.Stack.CardSizeDifferenceRatio, m.Stack.CardOffsetDifference, m.Stack.VisibleCardIndexDifference))
			printKeyValue("cover", fmt.Sprintf("width %.0f→%.0f · spacing %.0f",
				m.Cover.CardWidth, m.Cover.MinimumCardWidth, m.Cover.Spacing))
			printKeyValue("parallax", fmt.Sprintf("scale %.2f", m.Parallax.Scale))
			printKeyValue("ambient", fmt.Sprintf("blur %.0f · darken %.2f",
				m.Ambient.BlurRadius, m.Ambient.DarkenOpacity))

			assets := imageref.NewAssetSet(assetNames...)
			remote := 0
			for _, item := range m.Items {
				ref := imageref.Reference{Source: item.Image, Placeholder: item.Placeholder}
				res := ref.Resolve(assets)
				if res.Kind == imageref.KindRemote {
					remote++
				}
				printDetail("%-16s %-7s %s", item.Title, res.Kind, item.Image)
			}

			if remote > 0 {
				printNextStep("Warm the cache", fmt.Sprintf("drift prefetch %s", args[0]))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&assetNames, "asset", nil, "bundled asset names (repeatable)")
	return cmd
}
