package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scigolib/grads/internal/utils"
)

const maxDescriptorLine = 1024 * 1024

// ParserConfig carries the settings a descriptor is parsed with.
type ParserConfig struct {
	Logger logrus.FieldLogger
	// StartTime and ForecastTime, when either is set, replace the
	// inference from the descriptor file name.
	StartTime    *time.Time
	ForecastTime *time.Duration
	// Endian, when set, replaces the byte order declared by the options
	// statement.
	Endian *Endian
}

type parser struct {
	desc     *Descriptor
	log      logrus.FieldLogger
	tdefSeen bool
}

// ParseDescriptorFile reads and parses the control file at path.
func ParseDescriptorFile(path string, cfg ParserConfig) (*Descriptor, error) {
	//nolint:gosec // G304: descriptor path is provided by the caller on purpose
	f, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapError("descriptor open failed", err)
	}
	defer func() { _ = f.Close() }()

	return ParseDescriptor(path, f, cfg)
}

// ParseDescriptor parses a control file read from r. path is used to resolve
// ^ data paths and to infer start and forecast times.
func ParseDescriptor(path string, r io.Reader, cfg ParserConfig) (*Descriptor, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, utils.WrapError("descriptor read failed", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := &parser{
		desc: &Descriptor{
			Path:         path,
			StartTime:    cfg.StartTime,
			ForecastTime: cfg.ForecastTime,
		},
		log: log.WithField("descriptor", filepath.Base(path)),
	}

	if err := p.run(NewLineCursor(lines)); err != nil {
		return nil, utils.WrapError("descriptor parse failed", err)
	}

	if cfg.Endian != nil {
		p.desc.Options.Endian = *cfg.Endian
	}

	if p.desc.StartTime == nil && p.desc.ForecastTime == nil {
		p.inferTimes()
	}

	p.log.WithFields(logrus.Fields{
		"vars":    len(p.desc.Vars),
		"records": len(p.desc.Records),
	}).Debug("descriptor parsed")

	return p.desc, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDescriptorLine)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (p *parser) run(c *LineCursor) error {
	for !c.Done() {
		consumed, err := p.parseLine(c)
		if err != nil {
			return fmt.Errorf("line %d: %w", c.LineNo(), err)
		}
		c.Advance(consumed)
	}
	return nil
}

// parseLine handles the statement under the cursor and returns how many
// lines it spans.
func (p *parser) parseLine(c *LineCursor) (int, error) {
	line := c.Current()
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 1, nil
	}

	keyword := LookupKeyword(fields[0])
	if keyword != KeywordUnknown {
		p.log.WithField("line", c.LineNo()).Debugf("parsing %s", keyword)
	}

	switch keyword {
	case KeywordDset:
		p.parseDset(restOf(line, fields[0]))
	case KeywordTitle:
		p.desc.Title = restOf(line, fields[0])
	case KeywordOptions:
		p.desc.Options.apply(fields[1:])
	case KeywordUndef:
		return 1, p.parseUndef(fields)
	case KeywordXdef, KeywordYdef, KeywordZdef:
		dim, consumed, err := parseDimension(c, fields)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", keyword, err)
		}
		p.setDimension(keyword, dim)
		return consumed, nil
	case KeywordTdef:
		tdef, err := parseTdef(fields)
		if err != nil {
			return 0, err
		}
		p.desc.TDef = tdef
		p.tdefSeen = true
	case KeywordVars:
		return p.parseVars(c, fields)
	case KeywordUnknown:
	}

	return 1, nil
}

func (p *parser) parseDset(path string) {
	p.desc.DSet = path
	p.desc.Template = strings.Contains(path, "%")

	if strings.HasPrefix(path, "^") {
		path = filepath.Join(filepath.Dir(p.desc.Path), path[1:])
	}
	p.desc.DataPath = path
}

func (p *parser) parseUndef(fields []string) error {
	if len(fields) < 2 {
		return errors.New("undef: missing value")
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("undef: %w", err)
	}
	p.desc.Undef = &v
	return nil
}

func (p *parser) setDimension(keyword Keyword, dim DimensionDef) {
	switch keyword {
	case KeywordXdef:
		p.desc.XDef = dim
	case KeywordYdef:
		p.desc.YDef = dim
	case KeywordZdef:
		p.desc.ZDef = dim
	}
}

// parseVars reads the variable list and immediately expands the record
// catalog, so zdef and tdef must already be known.
func (p *parser) parseVars(c *LineCursor, fields []string) (int, error) {
	vars, consumed, err := parseVars(c, fields)
	if err != nil {
		return 0, err
	}
	if !p.tdefSeen {
		return 0, ErrMissingTdef
	}

	records, err := GenerateRecords(vars, p.desc.ZDef, p.desc.TDef, p.desc.Template)
	if err != nil {
		return 0, err
	}

	p.desc.Vars = vars
	p.desc.Records = records
	return consumed, nil
}

func (p *parser) inferTimes() {
	p.log.Debug("guess start time and forecast time")

	start, forecast, err := InferTimes(p.desc.Path)
	if err != nil {
		p.log.WithError(err).Warn("start time and forecast time left unset")
		return
	}

	p.desc.StartTime = &start
	p.desc.ForecastTime = &forecast
}

// restOf returns line without its leading keyword.
func restOf(line, keyword string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, keyword))
}
