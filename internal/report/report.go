// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders and exports channel reports.
// Implements: prd002-report (R1-R4);
//
//	docs/ARCHITECTURE.md § Report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// DefaultFilename is where scout exports land unless --out overrides it.
const DefaultFilename = "promotion_channels.json"

// Print writes the report to w as a headed channel listing (R1.1). Empty
// categories are omitted; the rest appear in report order.
func Print(r types.ChannelReport, w io.Writer) {
	fmt.Fprintln(w, "--- Promotion Channels Found ---")
	for _, c := range types.Categories() {
		names := r.Get(c)
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", Title(c))
		for _, name := range names {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
}

// Title renders a category key as a heading: underscores become spaces and
// every word gets a leading capital ("github_topics" becomes "Github Topics").
func Title(c types.Category) string {
	words := strings.Split(string(c), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// WriteJSON writes the report to path as 4-space-indented JSON, replacing
// any existing file (R2.1, R2.2). All eight category keys are written;
// empty categories serialize as [].
func WriteJSON(r types.ChannelReport, path string) error {
	r.Normalize()
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteYAML writes the report to path as YAML (R3.1).
func WriteYAML(r types.ChannelReport, path string) error {
	r.Normalize()
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadJSON loads a previously exported report (R4.1). Category keys missing
// from the file come back as empty lists.
func ReadJSON(path string) (types.ChannelReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ChannelReport{}, fmt.Errorf("reading report file: %w", err)
	}
	var r types.ChannelReport
	if err := json.Unmarshal(data, &r); err != nil {
		return types.ChannelReport{}, fmt.Errorf("parsing report file: %w", err)
	}
	r.Normalize()
	return r, nil
}
