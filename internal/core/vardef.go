package core

import (
	"fmt"
	"strconv"
	"strings"
)

// VarDef is one entry of the vars section.
type VarDef struct {
	Name string
	// Levels is the number of vertical levels, 0 for a single level field.
	Levels      int
	Units       string
	Description string
}

// IsSingleLevel reports whether the variable has no vertical axis.
func (v VarDef) IsSingleLevel() bool {
	return v.Levels == 0
}

// parseVars parses the vars statement and the variable lines following it.
//
//	vars 2
//	t    27 99 temperature (K)
//	t2m   0 99 2m temperature (K)
func parseVars(c *LineCursor, fields []string) ([]VarDef, int, error) {
	if len(fields) != 2 {
		return nil, 0, fmt.Errorf("%w: `%s`", ErrMalformedVars, c.Current())
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return nil, 0, fmt.Errorf("%w: invalid count %q", ErrMalformedVars, fields[1])
	}

	vars := make([]VarDef, 0, count)
	for i := 1; i <= count; i++ {
		line, ok := c.Lookahead(i)
		if !ok {
			return nil, 0, fmt.Errorf("%w: vars expects %d variables, found %d",
				ErrUnexpectedEOF, count, len(vars))
		}

		v, err := parseVarLine(line)
		if err != nil {
			return nil, 0, err
		}
		vars = append(vars, v)
	}

	return vars, count + 1, nil
}

func parseVarLine(line string) (VarDef, error) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return VarDef{}, fmt.Errorf("%w: variable line `%s`", ErrMalformedVars, line)
	}

	levels, err := strconv.Atoi(parts[1])
	if err != nil || levels < 0 {
		return VarDef{}, fmt.Errorf("%w: variable %s: invalid levels %q", ErrMalformedVars, parts[0], parts[1])
	}

	return VarDef{
		Name:        parts[0],
		Levels:      levels,
		Units:       parts[2],
		Description: strings.Join(parts[3:], " "),
	}, nil
}
