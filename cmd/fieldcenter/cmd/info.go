package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/gobj"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info GEOMETRY.obj",
	Short: "show infos about input geometry",
	Long: `Read headland pass geometry from an OBJ file, then print the
face and vertex counts and bounding box on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	obj, err := gobj.Load(args[0])
	check(err)
	fmt.Printf("faces: %d\n", len(obj.Polys()))
	fmt.Printf("verts: %d\n", len(obj.Verts()))
	fmt.Printf("aabb : %s\n", obj.AABB())
}
