//go:build ignore
// +build ignore

// Generates testdata/post.ctl_2021080300_024 with its data file, a small
// GFS style dataset for manual runs of ctlinfo:
//
//	go run testdata/generators/generate_test_files.go
//	go run ./cmd/ctlinfo records testdata/post.ctl_2021080300_024
package main

import (
	"log"
	"math"
	"time"

	"github.com/scigolib/grads"
)

func linear(count int, start, step float64) grads.DimensionDef {
	values := make([]float64, count)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return grads.DimensionDef{Kind: grads.DimensionLinear, Count: count, Start: start, Step: step, Values: values}
}

func main() {
	undef := -9999.0
	start := time.Date(2021, 8, 4, 0, 0, 0, 0, time.UTC)
	layout := grads.DatasetLayout{
		DSet:    "^post.grd_2021080300_024",
		Title:   "generated GFS sample",
		Options: []string{"big_endian", "sequential"},
		Undef:   &undef,
		XDef:    linear(36, 0, 10),
		YDef:    linear(19, -90, 10),
		ZDef:    grads.DimensionDef{Kind: grads.DimensionLevels, Count: 4, Values: []float64{1000, 850, 500, 200}},
		TDef:    grads.TimeDef{Count: 1, Start: start, Step: time.Hour, Values: []time.Time{start}},
		Vars: []grads.VarDef{
			{Name: "h", Levels: 4, Units: "99", Description: "geopotential height (gpm)"},
			{Name: "t", Levels: 4, Units: "99", Description: "temperature (K)"},
			{Name: "t2m", Levels: 0, Units: "99", Description: "2m temperature (K)"},
			{Name: "psfc", Levels: 0, Units: "99", Description: "surface pressure (Pa)"},
		},
	}

	dw, err := grads.CreateDataset("testdata/post.ctl_2021080300_024", layout, grads.CreateTruncate)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := dw.Close(); err != nil {
			log.Fatal(err)
		}
	}()

	desc := dw.Descriptor()
	lats := desc.YDef().Values
	for _, rec := range desc.Records() {
		grid := make([]float32, desc.NX()*desc.NY())
		for row, lat := range lats {
			cos := math.Cos(lat * math.Pi / 180)
			for col := 0; col < desc.NX(); col++ {
				grid[row*desc.NX()+col] = float32(sample(rec, cos))
			}
		}
		if err := dw.WriteRecord(rec, grid); err != nil {
			log.Fatal(err)
		}
	}
}

func sample(rec grads.Record, cos float64) float64 {
	switch rec.Name {
	case "h":
		return 44330*(1-math.Pow(rec.Level/1013.25, 0.19)) + 100*cos
	case "t":
		return 220 + 60*cos + (rec.Level-200)/20
	case "t2m":
		return 240 + 60*cos
	default:
		return 101325 - 1000*cos
	}
}
