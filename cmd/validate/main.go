package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/emojisense/emojisense-backend/internal/repository"
	"github.com/emojisense/emojisense-backend/internal/validation"
)

func main() {
	emojiDir := flag.String("emoji-dir", "content/emojis", "emoji record directory")
	comboDir := flag.String("combo-dir", "content/combos", "combo record directory")
	jsonOut := flag.Bool("json", false, "emit the full result as JSON")
	flag.Parse()

	emojis, emojiLoadErrs, err := repository.LoadRawRecords(*emojiDir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *emojiDir, err)
	}
	combos, comboLoadErrs, err := repository.LoadRawRecords(*comboDir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *comboDir, err)
	}

	result := validation.ValidateAll(emojis, combos)

	// Unparseable files count as validation failures, same as schema errors
	result.Errors = append(append(emojiLoadErrs, comboLoadErrs...), result.Errors...)
	result.Valid = len(result.Errors) == 0

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
	} else {
		for _, e := range result.Errors {
			fmt.Println(e.String())
		}
		for _, w := range result.Warnings {
			fmt.Println("warning:", w)
		}
		fmt.Printf("checked %d emoji records, %d combo records: %d errors\n",
			len(emojis), len(combos), len(result.Errors))
	}

	if !result.Valid {
		os.Exit(1)
	}
}
