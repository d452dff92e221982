package hpgl

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsoluteLine(t *testing.T) {
	var a Accumulator
	var out []string
	for _, l := range []string{"PU;", "PR10,20;", "PR5,-15;", "PA1,1;", ""} {
		converted, err := a.AbsoluteLine(l)
		require.NoError(t, err)
		out = append(out, converted)
	}
	require.Equal(t, []string{"PU;", "PA10,20;", "PA15,5;", "PA1,1;", ""}, out)
	require.Equal(t, Point{15, 5}, a.Cursor())
}

func TestAbsoluteLineMalformed(t *testing.T) {
	var a Accumulator
	_, err := a.AbsoluteLine("PR4;")
	require.ErrorIs(t, err, ErrMalformedMove)
}

func TestRoundTrip(t *testing.T) {
	src := "IN;\nSP1;\nPA1000,1000;\nPD;\nPA1000,2000;\nPA2000,2000;\nPA2000,1000;\nPA1000,1000;\nPU;\nPA0,0;\nPD;\nPA5000,5000;\nPU;\n"

	var rel bytes.Buffer
	require.NoError(t, ParseProgram(src, "square").WriteRelative(&rel, nil))
	require.NotContains(t, rel.String(), "PA")

	relative := strings.TrimSuffix(rel.String(), "\n")
	var abs bytes.Buffer
	require.NoError(t, ParseProgram(relative, "square").WriteAbsolute(&abs))

	require.Equal(t, src, strings.TrimSuffix(abs.String(), "\n"))
}

func TestAbsoluteLineOverflow(t *testing.T) {
	var a Accumulator
	_, err := a.AbsoluteLine(fmt.Sprintf("PR%d,0;", math.MaxInt))
	require.NoError(t, err)

	_, err = a.AbsoluteLine("PR1,0;")
	require.ErrorIs(t, err, ErrMalformedMove)
	require.Equal(t, Point{math.MaxInt, 0}, a.Cursor())
}
