package cmd

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/tapir/packages/assert"
	"github.com/abdul-hamid-achik/tapir/packages/tap"
)

var (
	colorFlag   bool
	versionFlag int
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Emit a showcase TAP stream",
	Long: `Emit a TAP stream exercising the whole producer surface: a plan,
directives, equality and pattern assertions, error trapping and a
nested subtest. The exit code maps the session summary the way a TAP
harness would: 0 when everything passed, 1 otherwise.`,
	Run: demoCommand,
}

func init() {
	demoCmd.Flags().BoolVar(&colorFlag, "color", false, "tint result lines for human preview (not valid TAP)")
	demoCmd.Flags().IntVar(&versionFlag, "protocol-version", 0, "emit a TAP version header line")
}

func demoCommand(cmd *cobra.Command, args []string) {
	var out io.Writer = cmd.OutOrStdout()
	if colorFlag {
		out = newTintWriter(out)
	}

	opts := []tap.Option{tap.WithWriter(out), tap.WithPlan(9)}
	if versionFlag > 0 {
		opts = append([]tap.Option{tap.WithVersion(versionFlag)}, opts...)
	}
	s := tap.New(opts...)

	s.Diag("let's start slowly")
	s.Pass("the first one's free")

	s.Todo("not reliable yet")
	s.OK(len(os.Environ()) >= 0, "environment looks populated")

	s.SkipN(2, "failure is not an option")

	assert.Is(s, 5+50, 55, "arithmetic is good")
	assert.Is(s, "55", 55, "incompatible types but fitting matcher",
		func(s string, i int) bool { return s == strconv.Itoa(i) })
	assert.Like(s, "a 55 ", `\D \d+\s+`, "regex match")

	s.Subtest("exercising errors", func(sub *tap.Session) {
		assert.Throws(sub, func() error {
			return errors.New("deliberate failure")
		}, "errors are raised", `deliberate`)
		assert.Lives(sub, func() error { return nil }, "and trapped")
		sub.DoneTesting()
	})

	s.Pass("we're done")
	s.DoneTesting()

	if !s.Summary() {
		os.Exit(ExitTestFailure)
	}
}
