package sexp

import (
	"fmt"
	"strconv"
)

// Navigation helpers for inspecting parsed libraries in tests and tooling.

// Atom returns the text of a leaf atom regardless of whether it was quoted.
func Atom(s Sexp) (string, bool) {
	switch v := s.(type) {
	case Symbol:
		return string(v), true
	case Str:
		return string(v), true
	default:
		return "", false
	}
}

// NodeName returns the first symbol of a list, the conventional node tag.
func NodeName(s Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil node")
	}
	if s.IsLeaf() {
		if v, ok := Atom(s); ok {
			return v, nil
		}
		return "", fmt.Errorf("expected atom leaf")
	}
	if v, ok := Atom(s.Head()); ok {
		return v, nil
	}
	return "", fmt.Errorf("expected atom at head of list")
}

// Elements returns the children of a list as a slice.
func Elements(s Sexp) []Sexp {
	l, ok := s.(*List)
	if !ok {
		return nil
	}
	return l.elements
}

// FindNode returns the first child list of s whose head is key.
func FindNode(s Sexp, key string) (Sexp, bool) {
	for _, item := range Elements(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := NodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list of s whose head is key.
func FindAllNodes(s Sexp, key string) []Sexp {
	var results []Sexp
	for _, item := range Elements(s) {
		if item == nil || item.IsLeaf() {
			continue
		}
		if name, err := NodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetString extracts the atom text at index in a list. Index 0 is the node
// tag, 1 the first value.
func GetString(s Sexp, index int) (string, error) {
	l, ok := s.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}
	elem := l.Get(index)
	if elem == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, l.Len())
	}
	if v, ok := Atom(elem); ok {
		return v, nil
	}
	return "", fmt.Errorf("expected atom at index %d, got %T", index, elem)
}

// GetFloat extracts a float64 at index.
func GetFloat(s Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float %q: %w", str, err)
	}
	return val, nil
}

// GetInt extracts an int at index.
func GetInt(s Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("parse int %q: %w", str, err)
	}
	return val, nil
}

// HasSymbol reports whether a list directly contains the given bare symbol.
func HasSymbol(s Sexp, symbol string) bool {
	for _, item := range Elements(s) {
		if v, ok := item.(Symbol); ok && string(v) == symbol {
			return true
		}
	}
	return false
}
