package nansifile

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Item represents one planned invocation of an external program.
// Items are immutable once loaded: the executor only reads them.
type Item struct {
	// Label is an optional identifier. An empty label means the item is
	// unlabeled: it never satisfies a prerequisite and is excluded from
	// duplicate detection.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Exec is the program to invoke. Required.
	Exec string `json:"exec" yaml:"exec"`

	// Args are passed to the program as an argument vector after
	// templating. No shell interpretation takes place.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// PrintStatus controls whether a status line is printed after
	// execution. Defaults to true.
	PrintStatus bool `json:"print_status" yaml:"print_status"`

	// PrintOutput controls whether the captured output is printed after
	// execution. Defaults to false.
	PrintOutput bool `json:"print_output" yaml:"print_output"`

	// Prerequisites lists labels that must all belong to previously
	// succeeded items before this item may run.
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// File represents a parsed NansiFile: an ordered list of items plus the
// path the document was read from, kept for diagnostics.
type File struct {
	// ExecList is the ordered list of items. Order is significant.
	ExecList []Item `json:"exec_list" yaml:"exec_list"`

	// Path is the file the document was parsed from. Not part of the
	// document itself.
	Path string `json:"-" yaml:"-"`
}

// itemAlias avoids recursing into the custom unmarshalers below.
type itemAlias Item

func defaultItem() itemAlias {
	return itemAlias{PrintStatus: true}
}

// UnmarshalJSON applies the document defaults before decoding so that
// omitted fields keep them (print_status defaults to true, everything
// else to its zero value).
func (i *Item) UnmarshalJSON(data []byte) error {
	item := defaultItem()
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*i = Item(item)
	return nil
}

// UnmarshalYAML applies the same defaults for YAML documents.
func (i *Item) UnmarshalYAML(value *yaml.Node) error {
	item := defaultItem()
	if err := value.Decode(&item); err != nil {
		return err
	}
	*i = Item(item)
	return nil
}

// Ref returns the item reference used in diagnostics and status lines:
// "[<position>][<label>]" for labeled items, "[<position>]" otherwise.
// Positions are 1-based.
func (i Item) Ref(position int) string {
	if i.Label == "" {
		return fmt.Sprintf("[%d]", position)
	}
	return fmt.Sprintf("[%d][%s]", position, i.Label)
}

// DuplicateLabels returns the non-empty labels that occur more than once
// in the list, sorted lexicographically. Unlabeled items are ignored.
func (f *File) DuplicateLabels() []string {
	counts := make(map[string]int)
	for _, item := range f.ExecList {
		if item.Label != "" {
			counts[item.Label]++
		}
	}

	var duplicates []string
	for label, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, label)
		}
	}
	sort.Strings(duplicates)
	return duplicates
}
