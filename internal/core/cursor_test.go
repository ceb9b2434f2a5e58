package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCursor(t *testing.T) {
	c := NewLineCursor([]string{"  dset ^data.grd  ", "title test", "", "vars 0"})

	require.False(t, c.Done())
	assert.Equal(t, "dset ^data.grd", c.Current())
	assert.Equal(t, 1, c.LineNo())

	next, ok := c.Lookahead(1)
	require.True(t, ok)
	assert.Equal(t, "title test", next)

	_, ok = c.Lookahead(4)
	assert.False(t, ok)
	_, ok = c.Lookahead(-1)
	assert.False(t, ok)

	c.Advance(3)
	assert.Equal(t, "vars 0", c.Current())
	assert.Equal(t, 4, c.LineNo())

	c.Advance(10)
	assert.True(t, c.Done())
	assert.Empty(t, c.Current())
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		token string
		want  Keyword
	}{
		{"dset", KeywordDset},
		{"DSET", KeywordDset},
		{"title", KeywordTitle},
		{"Options", KeywordOptions},
		{"undef", KeywordUndef},
		{"xdef", KeywordXdef},
		{"ydef", KeywordYdef},
		{"zdef", KeywordZdef},
		{"TDEF", KeywordTdef},
		{"vars", KeywordVars},
		{"endvars", KeywordUnknown},
		{"*", KeywordUnknown},
		{"", KeywordUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := LookupKeyword(tt.token)
			assert.Equal(t, tt.want, got)
			if tt.want != KeywordUnknown {
				assert.Equal(t, got.String(), LookupKeyword(got.String()).String())
			}
		})
	}
}
