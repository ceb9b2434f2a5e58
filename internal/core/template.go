package core

import (
	"fmt"
	"strings"
	"time"
)

type templateToken struct {
	prefix string
	// valid tokens need the record valid time, the others its forecast time.
	valid  bool
	render func(valid time.Time, forecast time.Duration) string
}

// templateTokens is scanned in order; the first prefix matching a token wins.
var templateTokens = []templateToken{
	{"y2", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%02d", v.Year()%100) }},
	{"y4", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%04d", v.Year()) }},
	{"m1", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%d", v.Month()) }},
	{"m2", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%02d", v.Month()) }},
	{"d1", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%d", v.Day()) }},
	{"d2", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%02d", v.Day()) }},
	{"h1", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%d", v.Hour()) }},
	{"h2", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%02d", v.Hour()) }},
	{"h3", true, func(v time.Time, _ time.Duration) string { return fmt.Sprintf("%03d", v.Hour()) }},
	{"n2", false, func(_ time.Time, f time.Duration) string { return fmt.Sprintf("%02d", int(f/time.Minute)%60) }},
	{"f2", false, func(_ time.Time, f time.Duration) string { return fmt.Sprintf("%02d", int(f/time.Hour)) }},
	{"f3", false, func(_ time.Time, f time.Duration) string { return fmt.Sprintf("%03d", int(f/time.Hour)) }},
	{"fn2", false, func(_ time.Time, f time.Duration) string { return fmt.Sprintf("%02d", int(f/time.Minute)) }},
	{"fhn", false, func(_ time.Time, f time.Duration) string {
		return fmt.Sprintf("%02d%02d", int(f/time.Hour), int(f/time.Minute)%60)
	}},
}

// ResolveDataPath returns the data file holding rec. Fixed data paths are
// returned as is; templated paths have their % tokens substituted from the
// record valid time and forecast time.
//
//	/data/grapes_%y4%m2%d2%h2.grd -> /data/grapes_2021080200.grd
//
// Unknown tokens are kept without their % sign.
func ResolveDataPath(desc *Descriptor, rec Record) (string, error) {
	if !desc.Template {
		return desc.DataPath, nil
	}

	parts := strings.Split(desc.DataPath, "%")
	var b strings.Builder
	b.WriteString(parts[0])

	for _, part := range parts[1:] {
		tok, ok := matchTemplateToken(part)
		if !ok {
			b.WriteString(part)
			continue
		}
		if tok.valid && rec.ValidTime.IsZero() {
			return "", fmt.Errorf("%w: %%%s in %s", ErrMissingValidTime, tok.prefix, desc.DataPath)
		}
		b.WriteString(tok.render(rec.ValidTime, rec.ForecastTime))
		b.WriteString(part[len(tok.prefix):])
	}

	return b.String(), nil
}

func matchTemplateToken(part string) (templateToken, bool) {
	for _, tok := range templateTokens {
		if strings.HasPrefix(part, tok.prefix) {
			return tok, true
		}
	}
	return templateToken{}, false
}
