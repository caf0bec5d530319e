// Package main generates the JSON schemas under docs/.
package main

import (
	"os"
	"path/filepath"

	"github.com/yeisme/gitloc/pkg/utils/schema"
)

//go:generate go run github.com/yeisme/gitloc/cmd/schema
func main() {
	docs := filepath.Join("..", "..", "docs")
	if err := os.MkdirAll(docs, 0o755); err != nil {
		panic(err)
	}

	for _, name := range schema.Names() {
		f, err := os.Create(filepath.Join(docs, name+"_schema.json"))
		if err != nil {
			panic(err)
		}
		if err := schema.Generate(name, f); err != nil {
			_ = f.Close()
			panic(err)
		}
		if err := f.Close(); err != nil {
			panic(err)
		}
	}
}
