package ui

import (
	"log"

	"github.com/atotto/clipboard"
)

func readClipboard() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("Failed to read clipboard: %v", err)
		return ""
	}
	return s
}

func writeClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		log.Printf("Failed to write clipboard: %v", err)
	}
}
