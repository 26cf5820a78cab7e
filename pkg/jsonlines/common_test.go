package jsonlines_test

import "path/filepath"

// Structure and Point mirror the record shapes used across the test
// data files.
type Structure struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	On   bool   `json:"on"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func sample(name string) string {
	return filepath.Join("testdata", name)
}
