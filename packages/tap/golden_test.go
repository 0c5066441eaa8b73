package tap

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Golden files pin the byte-exact protocol stream for representative
// sessions. Regenerate with:
//
//	go test ./packages/tap -update
func TestGolden_ShowcaseStream(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithWriter(&buf), WithVersion(14))
	s.Plan(8)
	s.Diag("let's start slowly")
	s.Pass("the first one's free")
	s.Todo("not reliable yet")
	s.Fail("timestamp is even")
	s.SkipN(2, "failure is not an option")
	s.Skip("")
	s.Subtest("exercising errors", func(sub *Session) {
		sub.Pass("inner check")
		sub.DoneTesting()
	})
	s.Fail("lookup failed")
	require.NoError(t, s.DiagYAML(map[string]string{"severity": "fail"}))
	s.Bail("calling it a day")

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "showcase_stream", buf.Bytes())
}

func TestGolden_UnplannedStream(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithWriter(&buf))
	s.Pass("first things first")
	s.Diag("halfway there")
	s.Fail("second thoughts")
	s.DoneTesting()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "unplanned_stream", buf.Bytes())
}
