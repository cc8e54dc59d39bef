package sqm_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ConradIrwin/sqm-go"
)

func TestObjectOrder(t *testing.T) {
	obj := sqm.NewObject()
	obj.Set("b", sqm.Number(1))
	obj.Set("a", sqm.String("x"))
	obj.Set("b", sqm.Number(2))

	if keys := obj.Keys(); !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Errorf("expected [b a], got %v", keys)
	}
	if v, _ := obj.Get("b"); v != sqm.Number(2) {
		t.Errorf("expected replaced value, got %#v", v)
	}

	bytes, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	if string(bytes) != `{"b":2,"a":"x"}` {
		t.Errorf("unexpected json %s", bytes)
	}
}

func TestLookup(t *testing.T) {
	doc, err := sqm.Parse([]byte(`
class Mission
{
	class Item0
	{
		position[]={1,2,3};
	};
	names[]=
	{
		"a",
		"b"
	};
};
`))
	if err != nil {
		t.Fatal(err)
	}

	for _, test := range []struct {
		path []string
		want sqm.Value
		ok   bool
	}{
		{[]string{"Mission", "Item0", "position", "1"}, sqm.Number(2), true},
		{[]string{"Mission", "names", "0"}, sqm.String("a"), true},
		{[]string{"Mission", "names", "2"}, nil, false},
		{[]string{"Mission", "names", "-1"}, nil, false},
		{[]string{"Mission", "missing"}, nil, false},
		{[]string{"Mission", "names", "0", "deeper"}, nil, false},
	} {
		got, ok := doc.Lookup(test.path...)
		if ok != test.ok || got != test.want {
			t.Errorf("%v: expected %#v %v, got %#v %v", test.path, test.want, test.ok, got, ok)
		}
	}

	if root, ok := doc.Lookup(); !ok || root != sqm.Value(doc) {
		t.Errorf("expected empty path to return the root")
	}
}

func TestInterface(t *testing.T) {
	doc, err := sqm.Parse([]byte("class A\n{\n  list[]={1,\"b\"};\n  empty[]={};\n};\nn=3;"))
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]any{
		"A": map[string]any{
			"list":  []any{1.0, "b"},
			"empty": []any{},
		},
		"n": 3.0,
	}
	if got := sqm.Interface(doc); !reflect.DeepEqual(got, expected) {
		t.Errorf("got %#v, want %#v", got, expected)
	}
}

func TestSequence(t *testing.T) {
	seq := sqm.NewSequence(sqm.Number(1))
	seq.Append(sqm.String("two"))

	items := []sqm.Value{}
	for i, v := range seq.All() {
		if seq.Index(i) != v {
			t.Errorf("Index(%d) disagrees with All", i)
		}
		items = append(items, v)
	}
	if !reflect.DeepEqual(items, []sqm.Value{sqm.Number(1), sqm.String("two")}) {
		t.Errorf("unexpected items %#v", items)
	}

	bytes, err := json.Marshal(sqm.NewSequence())
	if err != nil {
		t.Fatal(err)
	}
	if string(bytes) != "[]" {
		t.Errorf("expected [], got %s", bytes)
	}
}
