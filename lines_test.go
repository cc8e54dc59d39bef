package sqm_test

import (
	"errors"
	"testing"

	"github.com/ConradIrwin/sqm-go"
)

func TestLines(t *testing.T) {
	for _, test := range []struct {
		name string
		in   string
		out  sqm.Line
	}{
		{"class", "class Mission", sqm.Line{Kind: sqm.ObjectOpen, Key: "Mission", Raw: "class Mission"}},
		{"class case", "CLASS Item0", sqm.Line{Kind: sqm.ObjectOpen, Key: "Item0", Raw: "CLASS Item0"}},
		{"class indented", "\t\tclass Item0  ", sqm.Line{Kind: sqm.ObjectOpen, Key: "Item0", Raw: "class Item0"}},
		{"array", "addons[]=", sqm.Line{Kind: sqm.ArrayOpen, Key: "addons", Raw: "addons[]="}},
		{"inline", "position[]={1,2,3};", sqm.Line{Kind: sqm.InlineArray, Key: "position", Content: "1,2,3", Raw: "position[]={1,2,3};"}},
		{"inline empty", "empty[]={};", sqm.Line{Kind: sqm.InlineArray, Key: "empty", Raw: "empty[]={};"}},
		{"close", "};", sqm.Line{Kind: sqm.Close, Raw: "};"}},
		{"brace", "{", sqm.Line{Kind: sqm.Brace, Raw: "{"}},
		{"assignment", `side="West";`, sqm.Line{Kind: sqm.Assignment, Key: "side", Content: `"West";`, Raw: `side="West";`}},
		{"assignment first equals", `init="a=b";`, sqm.Line{Kind: sqm.Assignment, Key: "init", Content: `"a=b";`, Raw: `init="a=b";`}},
		{"element", `"A3_Characters_F",`, sqm.Line{Kind: sqm.Element, Content: `"A3_Characters_F",`, Raw: `"A3_Characters_F",`}},
		{"classname is a key", "className=1;", sqm.Line{Kind: sqm.Assignment, Key: "className", Content: "1;", Raw: "className=1;"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			count := 0
			for lno, line := range sqm.Lines(test.in) {
				count++
				if lno != 1 {
					t.Errorf("expected line 1, got %d", lno)
				}
				if line != test.out {
					t.Errorf("expected %#v, got %#v", test.out, line)
				}
			}
			if count != 1 {
				t.Errorf("expected one line, got %d", count)
			}
		})
	}
}

func TestLineErrors(t *testing.T) {
	for in, want := range map[string]error{
		"class":   sqm.ErrMissingKey,
		"class ;": sqm.ErrMissingKey,
		"[]=":     sqm.ErrMissingKey,
		"[]={1};": sqm.ErrMissingKey,
		"=1;":     sqm.ErrMissingKey,
		"value;":  sqm.ErrMissingValue,
	} {
		for _, line := range sqm.Lines(in) {
			if line.Kind != sqm.Error {
				t.Errorf("%q: expected Error, got %v", in, line.Kind)
			}
			if !errors.Is(line.Err, want) {
				t.Errorf("%q: expected %v, got %v", in, want, line.Err)
			}
			if line.Raw != in {
				t.Errorf("%q: expected raw line, got %q", in, line.Raw)
			}
		}
	}
}

func TestLineNumbers(t *testing.T) {
	input := "class A\r\n{\r\n\r\n  x=1;\r};\n"
	kinds := []sqm.LineKind{}
	lnos := []int{}
	for lno, line := range sqm.Lines(input) {
		kinds = append(kinds, line.Kind)
		lnos = append(lnos, lno)
	}

	expectedKinds := []sqm.LineKind{sqm.ObjectOpen, sqm.Brace, sqm.Assignment, sqm.Close}
	expectedLnos := []int{1, 2, 4, 5}
	if len(kinds) != len(expectedKinds) {
		t.Fatalf("expected %v, got %v", expectedKinds, kinds)
	}
	for i := range kinds {
		if kinds[i] != expectedKinds[i] || lnos[i] != expectedLnos[i] {
			t.Errorf("line %d: expected %v at %d, got %v at %d", i, expectedKinds[i], expectedLnos[i], kinds[i], lnos[i])
		}
	}
}
