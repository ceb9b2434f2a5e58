package grads

import (
	"fmt"
	"os"
	"time"

	"github.com/ctessum/cdf"
)

// WriteNetCDF writes the field to w as a classic NetCDF file with level,
// latitude and longitude coordinate variables. A single level field gets a
// level axis of length one.
func (f *Field) WriteNetCDF(w *os.File) error {
	levelDim := f.LevelDim
	if levelDim == "" {
		levelDim = defaultLevelDim
	}
	dims := []string{levelDim, "latitude", "longitude"}

	h := cdf.NewHeader(dims, []int{len(f.Levels), len(f.Latitudes), len(f.Longitudes)})
	h.AddAttribute("", "title", f.Name)
	h.AddAttribute("", "valid_time", f.ValidTime.Format(time.RFC3339))
	if f.StartTime != nil && f.ForecastTime != nil {
		h.AddAttribute("", "start_time", f.StartTime.Format(time.RFC3339))
		h.AddAttribute("", "forecast_time", f.ForecastTime.String())
	}

	h.AddVariable(levelDim, []string{levelDim}, []float64{0})
	h.AddAttribute(levelDim, "long_name", levelDim)

	h.AddVariable("latitude", []string{"latitude"}, []float64{0})
	h.AddAttribute("latitude", "units", f.LatitudeUnits)
	h.AddAttribute("latitude", "standard_name", "latitude")
	h.AddAttribute("latitude", "long_name", "latitude")

	h.AddVariable("longitude", []string{"longitude"}, []float64{0})
	h.AddAttribute("longitude", "units", "degrees_east")
	h.AddAttribute("longitude", "standard_name", "longitude")
	h.AddAttribute("longitude", "long_name", "longitude")

	h.AddVariable(f.Name, dims, []float32{0})
	h.AddAttribute(f.Name, "description", f.Description)
	h.AddAttribute(f.Name, "units", f.Units)
	if f.Undef != nil {
		h.AddAttribute(f.Name, "_FillValue", []float32{float32(*f.Undef)})
	}
	h.Define()

	for _, err := range h.Check() {
		return fmt.Errorf("netcdf header for %s: %w", f.Name, err)
	}

	nc, err := cdf.Create(w, h)
	if err != nil {
		return fmt.Errorf("netcdf create: %w", err)
	}

	vars := []struct {
		name string
		data any
	}{
		{levelDim, f.Levels},
		{"latitude", f.Latitudes},
		{"longitude", f.Longitudes},
		{f.Name, f.Values},
	}
	for _, v := range vars {
		end := nc.Header.Lengths(v.name)
		start := make([]int, len(end))
		if _, err := nc.Writer(v.name, start, end).Write(v.data); err != nil {
			return fmt.Errorf("netcdf write %s: %w", v.name, err)
		}
	}

	return cdf.UpdateNumRecs(w)
}
