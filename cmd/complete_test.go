package cmd

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/posener/complete/v2/predict"
)

func TestPredictAccounts(t *testing.T) {
	setupApp(t, "")
	mustRun(t, &createCmd{}, "-holder", "A", "-number", "12", "-pin", "1234")
	mustRun(t, &createCmd{}, "-holder", "B", "-number", "3", "-pin", "1234")
	mustRun(t, &createCmd{}, "-holder", "C", "-number", "1", "-pin", "1234")

	testCases := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"1", "12", "3"}},
		{"1", []string{"1", "12"}},
		{"3", []string{"3"}},
		{"4", nil},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, predictAccounts(tc.prefix)); diff != "" {
			t.Errorf("predictAccounts(%q) mismatch (-want +got):\n%s", tc.prefix, diff)
		}
	}
}

func TestCompletion(t *testing.T) {
	root := Completion()
	for _, name := range commandNames() {
		if _, ok := root.Sub[name]; !ok {
			t.Errorf("command %q has no completion", name)
		}
	}

	deposit := root.Sub["deposit"]
	for _, flag := range []string{"number", "amount", "pin"} {
		if _, ok := deposit.Flags[flag]; !ok {
			t.Errorf("deposit flag -%s has no completion", flag)
		}
	}
	if _, ok := root.Sub["list"].Flags["json"]; !ok {
		t.Error("list flag -json has no completion")
	}

	topics, ok := root.Sub["topic"].Args.(predict.Set)
	if !ok || !slices.Contains(topics, "file-format") {
		t.Errorf("topic arguments = %v, want the documentation topics", root.Sub["topic"].Args)
	}
}
