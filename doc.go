// Package sqm implements parsing of SQM documents.
//
// SQM is the class based configuration format used by mission description
// files. A document is a sequence of semicolon terminated statements: named
// classes containing further statements, arrays written either one element
// per line or inline, and scalar assignments.
//
//	version=54;
//	class Mission
//	{
//		addons[]=
//		{
//			"A3_Characters_F",
//			"A3_Weapons_F"
//		};
//		class Item0
//		{
//			position[]={1024.5,5,2048};
//			side="West";
//		};
//	};
//
// [Parse] turns a document into a tree of [*Object], [*Sequence], [Number] and
// [String] values. Scalars are typed by [Coerce]: anything that looks like a
// decimal number becomes a Number, everything else is a String.
//
// Like the builtin json package, sqm can also store a document directly into
// Go values with [Unmarshal]:
//
//	type Item struct {
//	  Position []float64 `sqm:"position"`
//	  Side     string    `sqm:"side"`
//	}
//
//	var mission struct {
//	  Version int `sqm:"version"`
//	  Mission struct {
//	    Addons []string `sqm:"addons"`
//	    Item0  Item
//	  }
//	}
//	sqm.Unmarshal(data, &mission)
//
// If you only need the grammar, [Lines] classifies each line of a document
// without building a tree.
package sqm
