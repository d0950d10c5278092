package assembler

import (
	"iter"
)

const (
	LABEL_LIMIT = 32 // Maximum length of a label name.
)

// Label is a name bound to an address.
type Label struct {
	Name    string
	Address uint16
}

// LabelTable is an insertion ordered mapping of label names to addresses.
type LabelTable struct {
	labels []Label
	index  map[string]int
}

// Define binds a label to an address. Redefining a label replaces its
// address but keeps its original position in the table.
func (lt *LabelTable) Define(name string, address uint16) (redefined bool) {
	if lt.index == nil {
		lt.index = make(map[string]int, 16)
	}

	n, redefined := lt.index[name]
	if redefined {
		lt.labels[n].Address = address
		return
	}

	lt.index[name] = len(lt.labels)
	lt.labels = append(lt.labels, Label{Name: name, Address: address})

	return
}

// Lookup returns the address of a label. Names are case sensitive.
func (lt *LabelTable) Lookup(name string) (address uint16, ok bool) {
	n, ok := lt.index[name]
	if ok {
		address = lt.labels[n].Address
	}
	return
}

// Len returns the number of labels defined.
func (lt *LabelTable) Len() int {
	return len(lt.labels)
}

// All returns an iterator over the labels in definition order.
func (lt *LabelTable) All() iter.Seq2[string, uint16] {
	return func(yield func(name string, address uint16) bool) {
		for _, label := range lt.labels {
			if !yield(label.Name, label.Address) {
				return
			}
		}
	}
}

// Reset removes all labels.
func (lt *LabelTable) Reset() {
	lt.labels = lt.labels[:0]
	clear(lt.index)
}
