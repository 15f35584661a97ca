package app

import (
	"strings"
)

// StringArray is a flag.Value that collects every occurrence of a
// repeatable flag.
type StringArray []string

func (a *StringArray) Get() interface{} { return []string(*a) }

func (a *StringArray) Set(s string) error {
	*a = append(*a, s)
	return nil
}

func (a *StringArray) String() string {
	return strings.Join(*a, ",")
}
