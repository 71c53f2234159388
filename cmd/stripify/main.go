// stripify orders the faces of 3D models into triangle strips and reports or
// saves the result.
//
// Usage:
//
//	stripify [-v|-vv|-vvv] [-f] [-s file] [--config file] model...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/sandsmark/bostrip"
)

var (
	verbosity  int
	firstOnly  bool
	saveFile   string
	configFile string
	maxSteps   int
)

var rootCmd = &cobra.Command{
	Use:          "stripify [flags] model...",
	Short:        "Order mesh faces into triangle strips",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verbosity)
		defer glog.Flush()

		opts := bostrip.DefaultOptions()
		if configFile != "" {
			var err error
			if opts, err = bostrip.LoadOptions(configFile); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("max-steps") {
			opts.MaxSteps = maxSteps
		}
		if firstOnly {
			opts.FirstMeshOnly = true
		}
		return stripify(cmd.OutOrStdout(), args, opts, saveFile)
	},
}

func init() {
	f := rootCmd.Flags()
	f.CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv, -vvv)")
	f.BoolVarP(&firstOnly, "first", "f", false, "process only the first mesh of each model")
	f.StringVarP(&saveFile, "save", "s", "", "save the result to `file` (.yaml/.yml or .bstrip)")
	f.StringVar(&configFile, "config", "", "read options from a YAML `file`")
	f.IntVar(&maxSteps, "max-steps", 0, "strip search budget per mesh, 0 picks one from the face count")
}

// setupLogging points glog at stderr with the requested level.
func setupLogging(level int) {
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(level))
	flag.CommandLine.Parse(nil)
}

func stripify(out io.Writer, files []string, opts bostrip.Options, save string) error {
	if save != "" && len(files) != 1 {
		return errors.New("-s needs exactly one input model")
	}
	for _, fileName := range files {
		model, err := bostrip.LoadModel(fileName, opts)
		if err != nil {
			return err
		}
		results := model.Build(opts)
		for i, fm := range model.Meshes {
			indices, p := fm.Indices()
			res := results[i]
			fmt.Fprintf(out, "%s/%s: %s faces=%d indices=%d steps=%d",
				model.Name, fm.Name, p, fm.FaceCount(), len(indices), res.Steps)
			if fm.Removed() > 0 {
				fmt.Fprintf(out, " removed=%d", fm.Removed())
			}
			if len(res.Duplicates) > 0 {
				fmt.Fprintf(out, " duplicates=%d", len(res.Duplicates))
			}
			if res.LimitHit {
				fmt.Fprint(out, " limit")
			}
			fmt.Fprintln(out)
			if glog.V(3) {
				glog.Infof("%s/%s indices: %v", model.Name, fm.Name, indices)
			}
		}
		stats := model.Stats()
		glog.V(1).Infof("%s: %d/%d meshes stripified, %d indices instead of %d",
			model.Name, stats.StripMeshes, stats.Meshes, stats.Indices, stats.ListIndices)

		if save != "" {
			if err := bostrip.SaveModel(save, model); err != nil {
				return err
			}
			glog.V(1).Infof("saved %s", save)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
