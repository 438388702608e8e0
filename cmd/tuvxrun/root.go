package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuvx-go/tuvx/model"
)

var (
	configFile string
	verbose    bool

	cfgData *RunConfig
	log     *logrus.Entry
)

// RootCmd is the tuvxrun CLI's main command.
var RootCmd = &cobra.Command{
	Use:   "tuvxrun",
	Short: "Run a 1-D radiative-transfer and photolysis-rate calculation.",
	Long: `tuvxrun runs a single delta-Eddington radiative transfer and photolysis
rate calculation from a TOML configuration file and prints a summary of the
result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return startup(configFile)
	},
}

func startup(path string) error {
	var err error
	cfgData, err = ReadConfigFile(path)
	if err != nil {
		return err
	}
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	l := logrus.New()
	l.SetLevel(level)
	log = l.WithField("cmd", "tuvxrun")
	return nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model and print a summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &model.Config{
			WavelengthMinNm:       cfgData.WavelengthMinNm,
			WavelengthMaxNm:       cfgData.WavelengthMaxNm,
			NWavelengthBins:       cfgData.NWavelengthBins,
			AltitudeMinKm:         cfgData.AltitudeMinKm,
			AltitudeMaxKm:         cfgData.AltitudeMaxKm,
			NAltitudeLayers:       cfgData.NAltitudeLayers,
			SolarZenithAngleDeg:   cfgData.SolarZenithAngleDeg,
			DayOfYear:             cfgData.DayOfYear,
			SurfaceAlbedo:         cfgData.SurfaceAlbedo,
			UseStandardAtmosphere: cfgData.UseStandardAtmosphere,
			UseSphericalGeometry:  cfgData.UseSphericalGeometry,
			EarthRadiusKm:         cfgData.EarthRadiusKm,
			LatitudeDeg:           cfgData.LatitudeDeg,
			LongitudeDeg:          cfgData.LongitudeDeg,
		}

		m, err := model.New(cfg, log)
		if err != nil {
			return fmt.Errorf("tuvxrun: building model: %v", err)
		}

		var out *model.Output
		if cfgData.Year > 0 {
			out, err = m.CalculateAt(cfgData.Year, cfgData.Month, cfgData.Day, cfgData.Hour)
		} else {
			out, err = m.Calculate()
		}
		if err != nil {
			return fmt.Errorf("tuvxrun: calculating: %v", err)
		}

		fmt.Println(out.Summary())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tuvxrun v0.1.0")
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "tuvxrun.toml", "path to a TOML configuration file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(versionCmd)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
