package main

import (
	"fmt"
	"strings"
)

// flagSet represents an input source that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireExactlyOne returns an error if not exactly one of the given sources is set.
func requireExactlyOne(flags ...flagSet) error {
	var set []string
	for _, f := range flags {
		if f.isSet {
			set = append(set, f.name)
		}
	}

	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.name
	}
	flagList := strings.Join(names, ", ")

	if len(set) == 0 {
		return fmt.Errorf("one of %s is required", flagList)
	}
	if len(set) > 1 {
		return fmt.Errorf("only one of %s can be specified", flagList)
	}
	return nil
}
