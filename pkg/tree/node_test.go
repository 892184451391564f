package tree

import "iter"

// Test node types. Each one implements only the capabilities its tests need,
// the same way a caller of this package would.

// fsEntry has indexed children and file/directory status.
type fsEntry struct {
	name     string
	regular  bool
	children []Box[*fsEntry]
}

func (e *fsEntry) IsFile() bool { return e.regular }

func (e *fsEntry) Children() []Box[*fsEntry] { return e.children }

func dir(name string, children ...*fsEntry) *fsEntry {
	d := &fsEntry{name: name}
	for _, c := range children {
		d.children = append(d.children, Wrap(c))
	}
	return d
}

func file(name string) *fsEntry {
	return &fsEntry{name: name, regular: true}
}

// sampleTree is the fixture most traversal tests run against:
//
//	root/
//	  a/
//	    a1
//	    a2/
//	      a21
//	  b
//	  c/
//	    c1
//
// where a1, a21, b and c1 are files.
func sampleTree() *fsEntry {
	return dir("root",
		dir("a",
			file("a1"),
			dir("a2", file("a21")),
		),
		file("b"),
		dir("c", file("c1")),
	)
}

func names(seq iter.Seq[*fsEntry]) []string {
	out := []string{}
	for e := range seq {
		out = append(out, e.name)
	}
	return out
}

// valEntry has indexed children and an int value.
type valEntry struct {
	value    int
	children []Box[*valEntry]
}

func (e *valEntry) Value() int { return e.value }

func (e *valEntry) Children() []Box[*valEntry] { return e.children }

func val(v int, children ...*valEntry) *valEntry {
	n := &valEntry{value: v}
	for _, c := range children {
		n.children = append(n.children, Wrap(c))
	}
	return n
}

// over2 matches entries whose value is greater than 2.
type over2 struct{}

func (over2) Match(e *valEntry) bool { return e.value > 2 }

// valueOf selects the entry's value.
type valueOf struct{}

func (valueOf) Select(e *valEntry) int { return e.value }

// keyedEntry owns its children through a name-keyed mapping.
type keyedEntry struct {
	name    string
	regular bool
	kids    *KeyedBoxes[string, *keyedEntry]
}

func (e *keyedEntry) IsFile() bool { return e.regular }

func (e *keyedEntry) KeyedChildren() *KeyedBoxes[string, *keyedEntry] { return e.kids }

func kdir(name string, children ...*keyedEntry) *keyedEntry {
	d := &keyedEntry{name: name, kids: NewKeyedBoxes[string, *keyedEntry]()}
	for _, c := range children {
		d.kids.Put(c.name, c)
	}
	return d
}

func kfile(name string) *keyedEntry {
	return &keyedEntry{name: name, regular: true, kids: NewKeyedBoxes[string, *keyedEntry]()}
}

func keyedNames(seq iter.Seq[*keyedEntry]) []string {
	out := []string{}
	for e := range seq {
		out = append(out, e.name)
	}
	return out
}

// obsEntry owns its children through a growable list.
type obsEntry struct {
	name    string
	regular bool
	kids    *BoxList[*obsEntry]
}

func (e *obsEntry) IsFile() bool { return e.regular }

func (e *obsEntry) ObservableChildren() *BoxList[*obsEntry] { return e.kids }

func odir(name string, children ...*obsEntry) *obsEntry {
	d := &obsEntry{name: name, kids: NewBoxList[*obsEntry]()}
	d.kids.Append(children...)
	return d
}

func ofile(name string) *obsEntry {
	return &obsEntry{name: name, regular: true, kids: NewBoxList[*obsEntry]()}
}

func obsNames(seq iter.Seq[*obsEntry]) []string {
	out := []string{}
	for e := range seq {
		out = append(out, e.name)
	}
	return out
}
