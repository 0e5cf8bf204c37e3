// Package main implements a multichecker that runs a set of static analysis
// analyzers on Go code.
//
// This tool runs a collection of analyzers including:
// - Standard analyzers from golang.org/x/tools/go/analysis/passes
// - A custom analyzer that forbids the default Prometheus registry
//
// Usage:
//
//	go run cmd/staticlint/main.go ./...
//	./staticlint ./...
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"github.com/sbilibin2017/stepsypush/cmd/staticlint/analyzers"
)

// main runs the multichecker tool that aggregates standard and custom analyzers.
func main() {
	multichecker.Main(
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		lostcancel.Analyzer,
		printf.Analyzer,
		unusedresult.Analyzer,
		analyzers.NoGlobalRegistryAnalyzer,
	)
}
