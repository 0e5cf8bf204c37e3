// Package analyzers contains custom analyzers for static analysis.
package analyzers

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const prometheusPkg = "github.com/prometheus/client_golang/prometheus"

// globalRegistryIdents are the prometheus package members that read or mutate
// the process-wide default registry.
var globalRegistryIdents = map[string]bool{
	"DefaultRegisterer": true,
	"DefaultGatherer":   true,
	"MustRegister":      true,
	"Register":          true,
	"Unregister":        true,
}

// NoGlobalRegistryAnalyzer reports uses of the default Prometheus registry.
// Metrics must live in an explicitly owned registry passed to the push path.
var NoGlobalRegistryAnalyzer = &analysis.Analyzer{
	Name: "noglobalregistry",
	Doc:  "disallow use of the default Prometheus registry",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || !globalRegistryIdents[sel.Sel.Name] {
				return true
			}

			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}

			pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
			if !ok || pkgName.Imported().Path() != prometheusPkg {
				return true
			}

			pass.Reportf(sel.Pos(), "use of prometheus.%s is forbidden, pass an owned registry instead", sel.Sel.Name)
			return true
		})
	}
	return nil, nil
}
