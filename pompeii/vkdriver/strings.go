package vkdriver

import "strings"

func vkString(str string) string {
	if len(str) == 0 {
		return "\x00"
	} else if str[len(str)-1] != '\x00' {
		return str + "\x00"
	}
	return str
}

func vkStrings(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for t, name := range names {
		out[t] = vkString(name)
	}
	return out
}

// TrimName drops the terminator native APIs leave on names.
func TrimName(name string) string {
	return strings.TrimRight(name, "\x00")
}
