package cmd

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arl/fieldcenter/center"
	"github.com/arl/fieldcenter/geom"
	"github.com/arl/fieldcenter/internal/fctx"
)

var (
	generateConfigVal string
	generateInputVal  string
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate OUTFILE",
	Short: "generate a center-course track from input geometry",
	Long: `Generate a center-course coverage track from input geometry in OBJ.

The OBJ file's faces are the headland pass polygons: the settings file's
nFieldPasses leading faces are the field's own headland passes
(outermost first), every remaining face is one island's outermost
headland. The resulting polyline is written to OUTFILE as CSV.`,
	Args: cobra.ExactArgs(1),
	Run:  doGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateConfigVal, "config", "fieldcenter.yml", "generator settings")
	generateCmd.Flags().StringVar(&generateInputVal, "input", "", "input geometry OBJ file (required)")
}

func doGenerate(cmd *cobra.Command, args []string) {
	outPath := args[0]
	check(fileExists(generateConfigVal))
	check(fileExists(generateInputVal))

	settings := DefaultSettings()
	check(unmarshalYAMLFile(generateConfigVal, &settings))

	headlands, islands, err := center.LoadHeadlandsOBJ(generateInputVal, settings.NFieldPasses, settings.CircleStart, settings.CircleStep)
	check(err)

	ctx := fctx.New(true)
	rng := rand.New(rand.NewSource(settings.Seed))

	track, bestAngle, nTracks, blocks, ok, err := center.GenerateFieldCenter(
		ctx, rng, headlands, islands, settings.Width, settings.Headland, settings.Center, settings.GA)
	check(err)
	if !ok {
		fmt.Println("warning: result looks implausible (too many or too small blocks)")
	}
	fmt.Printf("best angle %.1f deg, %d parallel tracks across %d blocks\n", bestAngle, nTracks, len(blocks))

	check(writeTrackCSV(outPath, track))
	fmt.Printf("track written to '%s'\n", outPath)
}

func writeTrackCSV(path string, track []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "turnStart", "turnEnd", "ridgeMarker"}); err != nil {
		return err
	}
	for _, p := range track {
		row := []string{
			strconv.FormatFloat(float64(p.X()), 'f', 3, 32),
			strconv.FormatFloat(float64(p.Y()), 'f', 3, 32),
			strconv.FormatBool(p.TurnStart),
			strconv.FormatBool(p.TurnEnd),
			strconv.Itoa(int(p.RidgeMarker)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
