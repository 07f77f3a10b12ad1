package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writePack(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write pack %s: %v", name, err)
	}
}

func TestLoadPacks_MissingDir(t *testing.T) {
	base := Default()
	result, infos, err := LoadPacks(filepath.Join(t.TempDir(), "nope"), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != base {
		t.Error("expected base catalog back when packs dir is missing")
	}
	if len(infos) != 0 {
		t.Errorf("expected no pack infos, got %d", len(infos))
	}
}

func TestLoadPacks_MergesEnabledPacks(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "keto.yaml", `
name: keto
description: Ketogenic diet rules
version: "1.0"
author: test
ingredients:
  Maltitol:
    category: sweetener
    risk_tags: [high_glycemic, sugar_alcohol]
rules:
  high_glycemic:
    - dimension: dietary_restriction
      profile_value: keto
      weight: 0.8
      reason: "High glycemic ingredient: breaks ketosis"
  sugar_alcohol:
    - dimension: dietary_restriction
      profile_value: keto
      weight: 0.3
      reason: "Sugar alcohol: may affect ketosis"
`)
	writePack(t, dir, "_disabled.yaml", `
name: disabled
ingredients:
  unobtainium:
    category: metal
    risk_tags: []
`)
	writePack(t, dir, "notes.txt", "not a pack")

	merged, infos, err := LoadPacks(dir, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 pack infos, got %d", len(infos))
	}

	if _, ok := merged.Lookup("maltitol"); !ok {
		t.Error("expected pack ingredient to be merged")
	}
	if _, ok := merged.Lookup("unobtainium"); ok {
		t.Error("disabled pack must not be merged")
	}

	glycemic := merged.ConflictsForTag("high_glycemic")
	if len(glycemic) != 2 {
		t.Fatalf("expected base + pack rules for high_glycemic, got %d", len(glycemic))
	}
	if glycemic[0].ProfileValue != "diabetes" || glycemic[1].ProfileValue != "keto" {
		t.Errorf("pack rules should be appended after base rules: %+v", glycemic)
	}

	// Base catalog is untouched.
	if len(Default().ConflictsForTag("high_glycemic")) != 1 {
		t.Error("base catalog should not change")
	}
}

func TestLoadPacks_InvalidPackIsListedNotMerged(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "broken.yaml", `
name: broken
rules:
  salty:
    - dimension: health_condition
      profile_value: hypertension
      weight: 4
      reason: too heavy
`)

	merged, infos, err := LoadPacks(dir, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 1 || infos[0].Err == nil {
		t.Fatalf("expected one pack info carrying an error, got %+v", infos)
	}
	if len(merged.ConflictsForTag("salty")) != 0 {
		t.Error("invalid pack rules must not be merged")
	}
}
