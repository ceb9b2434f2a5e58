package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scigolib/grads"
)

// app carries the configuration shared by all subcommands.
type app struct {
	cfg *viper.Viper
	log *logrus.Logger
}

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "ctlinfo",
		Short: "Inspect GrADS descriptors and binary data files.",
		Long: `ctlinfo parses GrADS control files and reads the binary records they describe.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CTLINFO_var' where 'var' is
the name of the variable to be set, with dashes replaced by underscores.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setConfig(cmd)
		},
	}

	describe := a.describeCmd()
	records := a.recordsCmd()
	extract := a.extractCmd()
	dump := a.dumpCmd()

	queryFlags := []*pflag.FlagSet{extract.Flags(), dump.Flags()}
	a.bindOptions([]option{
		{
			name:       "config",
			usage:      "config specifies the configuration file location.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "log-level",
			usage:      "log-level sets the verbosity: debug, info, warn or error.",
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "endian",
			usage:      "endian overrides the byte order of the data files: little, big or native.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "start-time",
			usage:      "start-time sets the forecast start time as YYYYMMDDHH instead of guessing it from the file name.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "forecast-time",
			usage:      "forecast-time sets the forecast lead time, such as 24h, instead of guessing it from the file name.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "name",
			usage:      "name lists only the records of this variable.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{records.Flags()},
		},
		{
			name:       "param",
			usage:      "param is the variable to load.",
			shorthand:  "p",
			defaultVal: "",
			flagsets:   queryFlags,
		},
		{
			name:       "level-type",
			usage:      "level-type is single, index, a level axis name such as pl, or empty for any.",
			defaultVal: "",
			flagsets:   queryFlags,
		},
		{
			name:       "level",
			usage:      "level lists the levels (or level indices) to load.",
			shorthand:  "l",
			defaultVal: []string{},
			flagsets:   queryFlags,
		},
		{
			name:       "level-dim",
			usage:      "level-dim renames the level axis of the result.",
			defaultVal: "",
			flagsets:   queryFlags,
		},
		{
			name:       "valid-time",
			usage:      "valid-time selects the time step valid at YYYYMMDDHH.",
			defaultVal: "",
			flagsets:   queryFlags,
		},
		{
			name:       "step",
			usage:      "step selects the time step by its offset from the first one, such as 6h.",
			defaultVal: "",
			flagsets:   queryFlags,
		},
		{
			name:       "south",
			usage:      "south keeps the on-disk south to north row order.",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{extract.Flags()},
		},
		{
			name:       "netcdf",
			usage:      "netcdf writes the loaded field to this NetCDF file.",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{extract.Flags()},
		},
		{
			name:       "length",
			usage:      "length is the number of bytes to dump.",
			defaultVal: 64,
			flagsets:   []*pflag.FlagSet{dump.Flags()},
		},
	})

	root.AddCommand(versionCmd(), describe, records, extract, dump)
	return root
}

func (a *app) bindOptions(options []option) {
	a.cfg.SetEnvPrefix("CTLINFO")
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	for _, opt := range options {
		for i, set := range opt.flagsets {
			if i != 0 { // The same flag is shared by every set after the first.
				set.AddFlag(opt.flagsets[0].Lookup(opt.name))
				continue
			}
			switch v := opt.defaultVal.(type) {
			case string:
				set.StringP(opt.name, opt.shorthand, v, opt.usage)
			case []string:
				set.StringSliceP(opt.name, opt.shorthand, v, opt.usage)
			case bool:
				set.BoolP(opt.name, opt.shorthand, v, opt.usage)
			case int:
				set.IntP(opt.name, opt.shorthand, v, opt.usage)
			default:
				panic(fmt.Sprintf("invalid default for option %s", opt.name))
			}
		}
		_ = a.cfg.BindPFlag(opt.name, opt.flagsets[0].Lookup(opt.name))
	}
}

// setConfig reads the configuration file, if there is one, and configures
// logging.
func (a *app) setConfig(cmd *cobra.Command) error {
	if cfgpath := a.cfg.GetString("config"); cfgpath != "" {
		a.cfg.SetConfigFile(cfgpath)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ctlinfo: problem reading configuration file: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.cfg.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("ctlinfo: %w", err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// openOptions converts the descriptor related configuration.
func (a *app) openOptions() ([]grads.Option, error) {
	opts := []grads.Option{grads.WithLogger(a.log)}

	if s := a.cfg.GetString("start-time"); s != "" {
		t, err := parseHourStamp(s)
		if err != nil {
			return nil, fmt.Errorf("start-time: %w", err)
		}
		opts = append(opts, grads.WithStartTime(t))
	}
	if s := a.cfg.GetString("forecast-time"); s != "" {
		d, err := cast.ToDurationE(s)
		if err != nil {
			return nil, fmt.Errorf("forecast-time: %w", err)
		}
		opts = append(opts, grads.WithForecastTime(d))
	}

	switch e := strings.ToLower(a.cfg.GetString("endian")); e {
	case "":
	case "little", "little_endian":
		opts = append(opts, grads.WithEndian(grads.EndianLittle))
	case "big", "big_endian":
		opts = append(opts, grads.WithEndian(grads.EndianBig))
	case "native":
		opts = append(opts, grads.WithEndian(grads.EndianNative))
	default:
		return nil, fmt.Errorf("endian: unknown byte order %q", e)
	}
	return opts, nil
}

func (a *app) open(path string) (*grads.Descriptor, error) {
	opts, err := a.openOptions()
	if err != nil {
		return nil, err
	}
	return grads.Open(path, opts...)
}

// query converts the query flags.
func (a *app) query() (grads.Query, error) {
	q := grads.Query{
		Parameter: a.cfg.GetString("param"),
		LevelType: grads.ParseLevelType(a.cfg.GetString("level-type")),
		LevelDim:  a.cfg.GetString("level-dim"),
	}
	if q.Parameter == "" {
		return q, fmt.Errorf("param is required")
	}
	if a.cfg.GetBool("south") {
		q.LatitudeDirection = grads.South
	}

	var levels []float64
	for _, s := range a.cfg.GetStringSlice("level") {
		v, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return q, fmt.Errorf("level %q: %w", s, err)
		}
		levels = append(levels, v)
	}
	if len(levels) > 0 {
		q.Level = grads.AtLevels(levels...)
	}

	if s := a.cfg.GetString("valid-time"); s != "" {
		t, err := parseHourStamp(s)
		if err != nil {
			return q, fmt.Errorf("valid-time: %w", err)
		}
		q.ValidTime = &t
	}
	if s := a.cfg.GetString("step"); s != "" {
		d, err := cast.ToDurationE(s)
		if err != nil {
			return q, fmt.Errorf("step: %w", err)
		}
		q.ForecastTime = &d
	}
	return q, nil
}

func parseHourStamp(s string) (time.Time, error) {
	return time.Parse("2006010215", s)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of ctlinfo.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("ctlinfo v%s\n", grads.Version)
		},
		DisableAutoGenTag: true,
	}
}
