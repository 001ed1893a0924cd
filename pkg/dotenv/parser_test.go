package dotenv_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/dotenv"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []dotenv.Pair
	}{
		{
			name:  "plain",
			input: "A=1\nB = two\n",
			want: []dotenv.Pair{
				{Key: "A", Value: "1", Line: 1},
				{Key: "B", Value: "two", Line: 2},
			},
		},
		{
			name:  "comments and blanks",
			input: "# comment\n\nA=1 # trailing\n  # indented\nB=x#y\n",
			want: []dotenv.Pair{
				{Key: "A", Value: "1", Line: 3},
				{Key: "B", Value: "x#y", Line: 5},
			},
		},
		{
			name:  "export and colon",
			input: "export A=1\nB: 2\n",
			want: []dotenv.Pair{
				{Key: "A", Value: "1", Line: 1},
				{Key: "B", Value: "2", Line: 2},
			},
		},
		{
			name:  "single quotes are literal",
			input: `A='me a home $HOME \n' # note`,
			want:  []dotenv.Pair{{Key: "A", Value: `me a home $HOME \n`, Quote: '\'', Line: 1}},
		},
		{
			name:  "double quote escapes",
			input: `A="line1\nline2 \"q\" \$KEEP tab\t"`,
			want:  []dotenv.Pair{{Key: "A", Value: "line1\nline2 \"q\" \\$KEEP tab\t", Quote: '"', Line: 1}},
		},
		{
			name:  "empty value",
			input: "A=\nB=''\n",
			want: []dotenv.Pair{
				{Key: "A", Value: "", Line: 1},
				{Key: "B", Value: "", Quote: '\'', Line: 2},
			},
		},
		{
			name:  "bom and crlf",
			input: "\xEF\xBB\xBFA=1\r\nB=2\r\n",
			want: []dotenv.Pair{
				{Key: "A", Value: "1", Line: 1},
				{Key: "B", Value: "2", Line: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dotenv.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		errMsg string
	}{
		{name: "no equals", input: "A=1\nJUSTAKEY\n", line: 2, errMsg: "expected '='"},
		{name: "no key", input: "=value", line: 1, errMsg: "missing key"},
		{name: "unterminated single", input: "A='oops", line: 1, errMsg: "unterminated single quote"},
		{name: "unterminated double", input: `A="oops`, line: 1, errMsg: "unterminated double quote"},
		{name: "junk after quote", input: `A="x" y`, line: 1, errMsg: "after closing quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dotenv.Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var perr *dotenv.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
