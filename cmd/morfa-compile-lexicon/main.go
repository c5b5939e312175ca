package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/gveselov/morfa/adapters/lexdict"
)

var flagIn = flag.String("in", "lexicon.yaml", "Lexicon source file (YAML)")
var flagOut = flag.String("out", "lexicon.json", "Compiled output file (JSON)")

// Compiles a YAML lexicon into the JSON form the lambda bundles. The
// JSON decoder is a good deal faster on cold start than the YAML one.
func main() {
	flag.Parse()

	lexicon, err := lexdict.LoadLexicon(*flagIn)
	if err != nil {
		log.Fatalln("Failed to load lexicon:", err)
	}

	out, err := os.Create(*flagOut)
	if err != nil {
		log.Fatalln("Failed to create output file:", err)
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(lexicon); err != nil {
		log.Fatalln("Failed to write output file:", err)
	}

	wordCount := len(lexicon.Entries)
	log.Printf("Compiled %d word forms to %s", wordCount, *flagOut)
}
