package interval

import (
	"github.com/cs-au-dk/ivl/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
	Class   func(...interface{}) string
	State   func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Class: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
	State: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
}
