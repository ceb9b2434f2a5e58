// Copyright (c) 2025 SciGo HDF5 Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package grads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/scigolib/grads/internal/core"
	"github.com/scigolib/grads/internal/utils"
	"github.com/scigolib/grads/internal/writer"
)

// CreateMode specifies how data files are created.
type CreateMode int

const (
	// CreateTruncate overwrites existing files.
	CreateTruncate CreateMode = iota
	// CreateExclusive fails when a file already exists.
	CreateExclusive
)

// DatasetLayout declares the dataset written by CreateDataset.
type DatasetLayout struct {
	// DSet is the data path as it will appear in the descriptor. A leading
	// ^ makes it relative to the descriptor, % tokens make it a template.
	DSet    string
	Title   string
	Options []string
	Undef   *float64

	XDef DimensionDef
	YDef DimensionDef
	ZDef DimensionDef
	TDef TimeDef
	Vars []VarDef
}

// DatasetWriter writes the records of a dataset created by CreateDataset.
//
// Thread-safety: Not thread-safe. Caller must synchronize access.
type DatasetWriter struct {
	desc  *Descriptor
	mode  writer.CreateMode
	files map[string]*writer.FileWriter
}

// CreateDataset writes the descriptor at path and prepares the data files
// for WriteRecord. opts are applied when the written descriptor is parsed
// back.
//
// Example:
//
//	dw, err := grads.CreateDataset("post.ctl", layout, grads.CreateTruncate)
//	if err != nil {
//	    return err
//	}
//	defer dw.Close()
//	for _, rec := range dw.Descriptor().Records() {
//	    err = dw.WriteRecord(rec, grid)
//	}
func CreateDataset(path string, layout DatasetLayout, mode CreateMode, opts ...Option) (*DatasetWriter, error) {
	var writerMode writer.CreateMode
	switch mode {
	case CreateTruncate:
		writerMode = writer.ModeTruncate
	case CreateExclusive:
		writerMode = writer.ModeExclusive
	default:
		return nil, fmt.Errorf("invalid create mode: %d", mode)
	}

	if err := writeDescriptorFile(path, layout, writerMode); err != nil {
		return nil, err
	}

	desc, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}

	return &DatasetWriter{
		desc:  desc,
		mode:  writerMode,
		files: make(map[string]*writer.FileWriter),
	}, nil
}

func writeDescriptorFile(path string, layout DatasetLayout, mode writer.CreateMode) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if mode == writer.ModeExclusive {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	//nolint:gosec // G304: descriptor path is provided by the caller on purpose
	f, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return utils.WrapError("descriptor create failed", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = utils.WrapError("descriptor close failed", cerr)
		}
	}()

	d := &core.Descriptor{
		DSet:  layout.DSet,
		Title: layout.Title,
		Options: core.Options{
			Raw: slices.Clone(layout.Options),
		},
		Undef: layout.Undef,
		XDef:  layout.XDef,
		YDef:  layout.YDef,
		ZDef:  layout.ZDef,
		TDef:  layout.TDef,
		Vars:  layout.Vars,
	}
	if err := core.WriteDescriptor(f, d); err != nil {
		return utils.WrapError("descriptor write failed", err)
	}
	return nil
}

// Descriptor returns the parsed descriptor of the dataset.
func (w *DatasetWriter) Descriptor() *Descriptor {
	return w.desc
}

// WriteRecord stores values as the grid of rec. values holds ny rows of
// nx values in the order ReadRecord returns them.
func (w *DatasetWriter) WriteRecord(rec Record, values []float32) error {
	d := w.desc.d
	if len(values) != d.GridPoints() {
		return fmt.Errorf("record %s: got %d values for a %dx%d grid", rec.Name, len(values), d.NY(), d.NX())
	}

	offset, err := core.RecordOffset(d, rec)
	if err != nil {
		return err
	}
	path, err := core.ResolveDataPath(d, rec)
	if err != nil {
		return err
	}
	fw, err := w.file(path)
	if err != nil {
		return err
	}

	if d.Options.YRev {
		values = slices.Clone(values)
		core.FlipRows(values, d.NY(), d.NX())
	}
	return fw.WriteRecord(offset, values, d.Options.Endian.ByteOrder(), d.Options.Sequential)
}

func (w *DatasetWriter) file(path string) (*writer.FileWriter, error) {
	if fw, ok := w.files[path]; ok {
		return fw, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, utils.WrapError("data directory create failed", err)
	}
	fw, err := writer.NewFileWriter(path, w.mode)
	if err != nil {
		return nil, utils.WrapError("data file create failed", err)
	}
	w.files[path] = fw
	return fw, nil
}

// Close flushes and closes every data file written so far.
func (w *DatasetWriter) Close() error {
	var errs []error
	for path, fw := range w.files {
		if err := fw.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		if err := fw.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		delete(w.files, path)
	}
	return errors.Join(errs...)
}
