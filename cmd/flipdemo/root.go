package main

import (
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd wires flags to a demoConfig and runs the demo, writing to out.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		cfg        = defaultConfig()
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "flipdemo",
		Short: "Perform a 4-4 bistellar flip on a small Delaunay triangulation",
		Long: `Builds a fixture triangulation, finds an interior edge shared by exactly
four finite cells, picks two opposite link vertices as poles and replaces the
four cells around the edge by four cells around the other link diagonal.

Examples:
  flipdemo
  flipdemo --fixture axial --scale 10
  flipdemo --roundtrip --global-check`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				fromFile := defaultConfig()
				if err := loadConfig(configPath, &fromFile); err != nil {
					return err
				}
				overrideFromFlags(cmd, &fromFile, cfg)
				cfg = fromFile
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			return run(out, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with driver settings")
	f.StringVar(&cfg.Fixture, "fixture", cfg.Fixture, "starting triangulation: canonical or axial")
	f.IntVar(&cfg.Sides, "sides", cfg.Sides, "ring size of the axial fixture")
	f.Float64Var(&cfg.Scale, "scale", cfg.Scale, "uniform scale applied to fixture points")
	f.BoolVar(&cfg.RoundTrip, "roundtrip", cfg.RoundTrip, "flip the new edge back and compare")
	f.BoolVar(&cfg.GlobalCheck, "global-check", cfg.GlobalCheck, "validate the whole triangulation after each flip")

	return cmd
}

// overrideFromFlags copies every flag the user set explicitly from flags into dst.
func overrideFromFlags(cmd *cobra.Command, dst *demoConfig, flags demoConfig) {
	f := cmd.Flags()
	if f.Changed("fixture") {
		dst.Fixture = flags.Fixture
	}
	if f.Changed("sides") {
		dst.Sides = flags.Sides
	}
	if f.Changed("scale") {
		dst.Scale = flags.Scale
	}
	if f.Changed("roundtrip") {
		dst.RoundTrip = flags.RoundTrip
	}
	if f.Changed("global-check") {
		dst.GlobalCheck = flags.GlobalCheck
	}
}
