// Copyright (c) 2025 SciGo HDF5 Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package grads

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/grads/internal/core"
)

// Option configures how a descriptor is opened.
// This follows the Functional Options Pattern.
//
// Example:
//
//	desc, err := grads.Open("post.ctl_2021080200_024",
//	    grads.WithLogger(log),
//	    grads.WithForecastTime(24*time.Hour),
//	)
type Option func(*config) error

type config struct {
	logger       logrus.FieldLogger
	startTime    *time.Time
	forecastTime *time.Duration
	endian       *core.Endian
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (c *config) parserConfig() core.ParserConfig {
	return core.ParserConfig{
		Logger:       c.logger,
		StartTime:    c.startTime,
		ForecastTime: c.forecastTime,
		Endian:       c.endian,
	}
}

// WithLogger sets the logger used while parsing and reading records.
// The default is the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithStartTime sets the start time of the forecast explicitly.
// Setting it or WithForecastTime disables the inference from the
// descriptor file name.
func WithStartTime(t time.Time) Option {
	return func(c *config) error {
		c.startTime = &t
		return nil
	}
}

// WithForecastTime sets the forecast lead time explicitly.
func WithForecastTime(d time.Duration) Option {
	return func(c *config) error {
		if d < 0 {
			return fmt.Errorf("forecast time must not be negative, got %s", d)
		}
		c.forecastTime = &d
		return nil
	}
}

// WithEndian overrides the byte order declared in the descriptor options.
// EndianNative decodes with the byte order of the running machine.
func WithEndian(e Endian) Option {
	return func(c *config) error {
		switch e {
		case EndianLittle, EndianBig, EndianNative:
		default:
			return fmt.Errorf("unknown byte order %d", e)
		}
		c.endian = &e
		return nil
	}
}
