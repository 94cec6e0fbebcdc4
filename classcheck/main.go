// The classcheck command reports switches over interval classes and overlap
// states that do not list every constant.
package main

import (
	"github.com/cs-au-dk/ivl/analysis/exhaustive"

	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() { singlechecker.Main(exhaustive.Analyzer) }
