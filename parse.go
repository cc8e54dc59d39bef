package sqm

import (
	"fmt"
	"strings"
)

type frame struct {
	key string
	lno int
	raw string
}

type parser struct {
	*config
	root  *Object
	stack []frame
}

// Parse decodes an SQM document into a tree.
//
// The document is read one line at a time. "class Name" opens an object and
// "name[]=" opens an array, both closed again by "};". Assignments ("key=value;")
// and inline arrays ("name[]={a,b};") are stored in the innermost open object,
// and any other line inside an open array is appended to it. Scalars are
// converted with [Coerce].
//
// Parsing stops at the first problem, and the returned error is a
// [*ParseError] identifying the offending line. A document that ends with
// objects or arrays still open is an error unless [AllowUnclosed] is passed.
func Parse(data []byte, opts ...Option) (*Object, error) {
	p := &parser{config: newConfig(opts...), root: NewObject()}

	for lno, line := range Lines(string(data)) {
		if err := p.apply(lno, line); err != nil {
			return nil, &ParseError{Lno: lno, Line: line.Raw, Err: err}
		}
	}

	if len(p.stack) > 0 && !p.allowUnclosed {
		top := p.stack[len(p.stack)-1]
		return nil, &ParseError{Lno: top.lno, Line: top.raw, Err: ErrUnclosed}
	}
	return p.root, nil
}

func (p *parser) path() []string {
	path := make([]string, len(p.stack))
	for i, f := range p.stack {
		path[i] = f.key
	}
	return path
}

// current resolves the innermost open container from the root.
func (p *parser) current() (Value, error) {
	path := p.path()
	v, ok := p.root.Lookup(path...)
	if !ok {
		return nil, fmt.Errorf("%w: nothing at %s", ErrSyntax, strings.Join(path, "."))
	}
	return v, nil
}

// object returns the innermost open container if it can hold keys.
func (p *parser) object() (*Object, error) {
	v, err := p.current()
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

func (p *parser) apply(lno int, line Line) error {
	switch line.Kind {
	case Error:
		return line.Err

	case ObjectOpen, ArrayOpen:
		obj, err := p.object()
		if err != nil {
			return err
		}
		if line.Kind == ArrayOpen {
			obj.Set(line.Key, NewSequence())
		} else {
			obj.Set(line.Key, NewObject())
		}
		p.stack = append(p.stack, frame{key: line.Key, lno: lno, raw: line.Raw})

	case InlineArray:
		obj, err := p.object()
		if err != nil {
			return err
		}
		seq := NewSequence()
		if strings.TrimSpace(line.Content) != "" {
			for _, item := range strings.Split(line.Content, ",") {
				seq.Append(Coerce(item))
			}
		}
		obj.Set(line.Key, seq)

	case Close:
		if len(p.stack) == 0 {
			return ErrUnmatchedClose
		}
		p.stack = p.stack[:len(p.stack)-1]

	case Brace:

	case Assignment:
		obj, err := p.object()
		if err != nil {
			return err
		}
		obj.Set(line.Key, Coerce(line.Content))

	case Element:
		if len(p.stack) > 0 {
			v, err := p.current()
			if err != nil {
				return err
			}
			if seq, ok := v.(*Sequence); ok {
				seq.Append(Coerce(line.Content))
				return nil
			}
		}
		if p.strict {
			return ErrUnrecognized
		}

	default:
		panic(fmt.Errorf("%d: missing case %#v", lno, line))
	}
	return nil
}
