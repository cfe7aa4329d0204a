package main

import (
	"fmt"
	"os"

	"github.com/qa-tech/product-contract-tests/framework"
	"github.com/qa-tech/product-contract-tests/framework/harness"
	"github.com/qa-tech/product-contract-tests/producttests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}

	client := harness.NewClient(params.baseURL, nil)

	if err := client.AwaitService(params.waitTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Product API error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	params.filters.Describe(os.Stdout)

	fmt.Println("Running test suite")

	testLogger := &framework.ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := producttests.RunTestSuite(client, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}
