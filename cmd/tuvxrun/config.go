package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// RunConfig holds the contents of a tuvxrun TOML configuration file.
type RunConfig struct {
	WavelengthMinNm float64
	WavelengthMaxNm float64
	NWavelengthBins int

	AltitudeMinKm   float64
	AltitudeMaxKm   float64
	NAltitudeLayers int

	SolarZenithAngleDeg float64
	DayOfYear           int

	SurfaceAlbedo float64

	UseStandardAtmosphere bool
	UseSphericalGeometry  bool
	EarthRadiusKm         float64

	LatitudeDeg  float64
	LongitudeDeg float64

	Year  int
	Month int
	Day   int
	Hour  float64

	OutputFile string
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (*RunConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and try again", filename)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config := new(RunConfig)
	if _, err := toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}
	config.OutputFile = os.ExpandEnv(config.OutputFile)
	return config, nil
}
