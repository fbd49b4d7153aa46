package domain

import "strings"

// Channel is a saved Slack channel name, stored without the leading '#'.
type Channel string

// Normalize converts raw user input into a storable channel name: surrounding
// whitespace is trimmed, one leading '#' is stripped together with any
// whitespace that follows it. The result may be empty.
func Normalize(raw string) Channel {
	name := strings.TrimSpace(raw)
	if strings.HasPrefix(name, "#") {
		name = strings.TrimSpace(name[1:])
	}
	return Channel(name)
}

// IsEmpty reports whether the channel has no name.
func (c Channel) IsEmpty() bool {
	return c == ""
}

// String implements the Stringer interface.
func (c Channel) String() string {
	return string(c)
}
