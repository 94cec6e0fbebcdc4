// Package exhaustive checks that every switch over an enumerated type lists
// all of its constants and carries no default arm.
package exhaustive

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check that switches over interval classes are exhaustive

A switch whose tag has one of the enumerated types given by -enums must list
every constant of that type, and must not have a default arm.`

// defaultEnums are the enumerations of the interval package.
const defaultEnums = "github.com/cs-au-dk/ivl/interval.Class," +
	"github.com/cs-au-dk/ivl/interval.Class2," +
	"github.com/cs-au-dk/ivl/interval.OverlappingState"

var Analyzer = &analysis.Analyzer{
	Name:     "exhaustive",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var enums string

func init() {
	Analyzer.Flags.StringVar(&enums, "enums", defaultEnums,
		"comma-separated list of `pkgpath.Type` enumerations to check")
}

// tracked parses the -enums flag into a set of qualified type names.
func tracked() map[string]bool {
	res := make(map[string]bool)
	for _, name := range strings.Split(enums, ",") {
		if name = strings.TrimSpace(name); name != "" {
			res[name] = true
		}
	}
	return res
}

// members retrieves the package level constants of the given named type,
// ordered by value.
func members(named *types.Named) (res []*types.Const) {
	scope := named.Obj().Pkg().Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), named) {
			res = append(res, c)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return constant.Compare(res[i].Val(), token.LSS, res[j].Val())
	})
	return
}

func run(pass *analysis.Pass) (interface{}, error) {
	enums := tracked()
	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	ins.Preorder([]ast.Node{(*ast.SwitchStmt)(nil)}, func(n ast.Node) {
		sw := n.(*ast.SwitchStmt)
		if sw.Tag == nil {
			return
		}

		named, ok := pass.TypesInfo.TypeOf(sw.Tag).(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return
		}
		obj := named.Obj()
		if !enums[obj.Pkg().Path()+"."+obj.Name()] {
			return
		}

		covered := make(map[string]bool)
		for _, stmt := range sw.Body.List {
			cc := stmt.(*ast.CaseClause)
			if cc.List == nil {
				pass.Reportf(cc.Pos(), "switch on %s has a default arm", obj.Name())
				continue
			}
			for _, e := range cc.List {
				if tv, ok := pass.TypesInfo.Types[e]; ok && tv.Value != nil {
					covered[tv.Value.ExactString()] = true
				}
			}
		}

		var missing []string
		for _, c := range members(named) {
			if !covered[c.Val().ExactString()] {
				missing = append(missing, c.Name())
				// Aliases share a value; report the first name only.
				covered[c.Val().ExactString()] = true
			}
		}
		if len(missing) > 0 {
			pass.Reportf(sw.Pos(), "switch on %s is missing %s",
				obj.Name(), strings.Join(missing, ", "))
		}
	})

	return nil, nil
}
