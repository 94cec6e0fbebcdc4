package utils

import (
	"fmt"
	"testing"
)

func TestCanColorize(t *testing.T) {
	defer Opts().SetNoColorize(Opts().NoColorize())

	bracket := func(is ...interface{}) string { return "<" + fmt.Sprint(is...) + ">" }

	Opts().SetNoColorize(true)
	if got := CanColorize(bracket)("a", 1); got != "a1" {
		t.Errorf("Expected uncolorized a1, got %s", got)
	}

	Opts().SetNoColorize(false)
	if got := CanColorize(bracket)("a"); got != "<a>" {
		t.Errorf("Expected <a>, got %s", got)
	}
}

func TestDefaultTask(t *testing.T) {
	tk := Opts().Task()
	if !tk.IsEval() {
		t.Errorf("Expected the default task to be %s", task[_EVAL].flag)
	}
	if tk.IsClassify() || tk.IsOverlap() || tk.IsComponents() || tk.IsOverlapGraph() {
		t.Error("More than one task is selected")
	}
}
