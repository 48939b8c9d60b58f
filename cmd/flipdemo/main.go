// Command flipdemo builds a small Delaunay fixture, performs a 4-4
// bistellar flip on its interior pivot edge and prints the result.
//
//	flipdemo                          # canonical six-point bipyramid
//	flipdemo --fixture axial          # regular octahedron
//	flipdemo --roundtrip -v 2         # flip back and trace the engine
//	flipdemo --config demo.yaml       # settings from a file; flags win
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

func main() {
	fset, err := klogFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, "flipdemo:", err)
		os.Exit(2)
	}

	cmd := newRootCmd(os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(fset)

	err = cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// klogFlags registers klog's flags on a fresh set, logging to stderr by default.
func klogFlags() (*flag.FlagSet, error) {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return nil, errors.Wrap(err, "klog flags")
	}

	return fset, nil
}
