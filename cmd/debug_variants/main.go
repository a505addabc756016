package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"content-sync/core/snapshot"
	"content-sync/feature/content/variants"

	"github.com/tidwall/gjson"
)

func main() {
	defaultKey := flag.String("default", "", "explicit default variant key")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: debug_variants [-default key] <file.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if !gjson.ValidBytes(data) {
		log.Fatalf("%s is not valid JSON", flag.Arg(0))
	}

	result := variants.Normalize(gjson.ParseBytes(data), *defaultKey)

	out, err := snapshot.Encode(result.Variants)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Variants: %d\n", result.Variants.Len())
	fmt.Printf("Default: %s\n\n", result.DefaultKey)
	fmt.Print(string(out))
}
