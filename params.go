package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/qa-tech/product-contract-tests/framework"
	"github.com/qa-tech/product-contract-tests/productdef"
)

const defaultWaitTimeout = time.Second * 10

type commandParams struct {
	baseURL     string
	filters     framework.RegexFilters
	waitTimeout time.Duration
	debug       bool
	debugAll    bool
}

func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.baseURL, "url", productdef.DefaultBaseURL, "base URL of the product API under test")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.DurationVar(&c.waitTimeout, "wait", defaultWaitTimeout, "how long to wait for the API to respond before running tests")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.baseURL == "" {
		fmt.Fprintln(errOut, "-url must not be empty")
		fs.Usage()
		return false
	}
	return true
}
