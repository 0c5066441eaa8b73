package tap

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_LazilyCreated(t *testing.T) {
	std = nil
	defer func() { std = nil }()

	s := Default()
	assert.NotNil(t, s)
	assert.Same(t, s, Default())
}

func TestReset_ReplacesDefaultSession(t *testing.T) {
	defer func() { std = nil }()

	var buf bytes.Buffer
	s := Reset(WithWriter(&buf), WithPlan(2))
	assert.Same(t, s, Default())

	Pass("one")
	Todo("flaky")
	OK(false, "two")
	DoneTesting()

	want := "1..2\n" +
		"ok 1 - one\n" +
		"not ok 2 - two # TODO flaky\n"
	assert.Equal(t, want, buf.String())
	assert.False(t, Summary())
}

func TestProceduralSurface_MirrorsSessionMethods(t *testing.T) {
	defer func() { std = nil }()

	var buf bytes.Buffer
	Reset(WithWriter(&buf))
	Diag("let's start slowly")
	Pass("the first one's free")
	NOK(false, "negation works")
	Skip("can't think of anything")
	SkipN(2, "failure is not an option")
	Subtest("grouped", func(sub *Session) {
		sub.Pass("inner")
		sub.DoneTesting()
	})
	DoneTesting()

	want := "# let's start slowly\n" +
		"ok 1 - the first one's free\n" +
		"ok 2 - negation works\n" +
		"ok 3 - # SKIP can't think of anything\n" +
		"ok 4 - # SKIP failure is not an option 1/2\n" +
		"ok 5 - # SKIP failure is not an option 2/2\n" +
		"    ok 1 - inner\n" +
		"    1..1\n" +
		"ok 6 - grouped\n" +
		"1..6\n"
	assert.Equal(t, want, buf.String())
	assert.True(t, Summary())
}

func TestSkipAll_Procedural(t *testing.T) {
	defer func() { std = nil }()

	var buf bytes.Buffer
	Reset(WithWriter(&buf))
	SkipAll("no env")
	assert.Equal(t, "1..0 # SKIP no env\n", buf.String())
	assert.PanicsWithValue(t, ErrSessionClosed, func() { Pass("x") })
}
