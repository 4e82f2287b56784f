package outline

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text  string
		level Level
		ok    bool
	}{
		{"SECTION 260500 - COMMON WORK RESULTS", LevelSection, true},
		{"SECTION 260500.13", LevelSection, true},
		{"1.4 ACTION SUBMITTALS", LevelCategory, true},
		{"1.5 INFORMATIONAL SUBMITTALS", LevelCategory, true},
		{"A. Product Data: For each type of product.", LevelType, true},
		{"1. Manufacturer's catalog sheets", LevelItem, true},
		{"12. Wiring diagrams", LevelItem, true},
		{"a. Pump curves", LevelSubItem, true},
		{"1.5 inches in diameter.", 0, false},
		{"1.3 DEFINITIONS", 0, false},
		{"2.25 INFORMATIONAL SUBMITTALS", LevelCategory, true},
		{"SECTION 26050", 0, false},
		{"including accessories and trim.", 0, false},
		{"A.Product Data", 0, false},
		{"1.Manufacturer", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			level, ok := Classify(tc.text)
			if ok != tc.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			}
			if ok && level != tc.level {
				t.Errorf("Classify(%q) = %v, want %v", tc.text, level, tc.level)
			}
		})
	}
}

func TestNormalizer_DropsPageFurniture(t *testing.T) {
	n := &Normalizer{Boilerplate: []string{"Renovate Plant Science Building"}}
	raw := []string{
		"Renovate Plant Science Building  Project 1234",
		"Division 26 Submittals Report",
		"SECTION 260500",
		"Page 2.7",
		"1.4 ACTION SUBMITTALS",
	}
	lines, discarded, err := n.Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discarded != 3 {
		t.Errorf("expected 3 discarded lines, got %d", discarded)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Text != "SECTION 260500" || lines[0].Number != 3 {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Level != LevelCategory || lines[1].Number != 5 {
		t.Errorf("unexpected second line: %+v", lines[1])
	}
}

func TestNormalizer_MergesContinuations(t *testing.T) {
	n := &Normalizer{}
	raw := []string{
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"  A. Product Data: For each type of product, include",
		"construction details and",
		"",
		"   rated capacities.",
	}
	lines, _, err := n.Normalize(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	want := "A. Product Data: For each type of product, include construction details and rated capacities."
	if lines[2].Text != want {
		t.Errorf("expected %q, got %q", want, lines[2].Text)
	}
	if lines[2].Number != 3 {
		t.Errorf("expected merged line to keep source line 3, got %d", lines[2].Number)
	}
}

func TestNormalizer_DecimalContinuation(t *testing.T) {
	lines := mustLines(t,
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"A. Product Data: For conduit larger than",
		"1.5 inches in diameter.",
		"1. Manufacturer's catalog sheets",
	)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if want := "A. Product Data: For conduit larger than 1.5 inches in diameter."; lines[2].Text != want {
		t.Errorf("expected %q, got %q", want, lines[2].Text)
	}

	snaps, err := BuildSnapshots(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := depths(snaps), []int{1, 2, 3, 4, 0}; !equalInts(got, want) {
		t.Errorf("depths = %v, want %v", got, want)
	}
}

func TestNormalizer_OrphanContinuation(t *testing.T) {
	n := &Normalizer{}
	_, _, err := n.Normalize([]string{"Page 1.1", "stray text", "SECTION 260500"})
	if !errors.Is(err, ErrOrphanContinuation) {
		t.Fatalf("expected ErrOrphanContinuation, got %v", err)
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Line != 2 || fe.Text != "stray text" {
		t.Errorf("unexpected error position: line=%d text=%q", fe.Line, fe.Text)
	}
}

func mustLines(t *testing.T, raw ...string) []Line {
	t.Helper()
	lines, _, err := (&Normalizer{}).Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return lines
}

func depths(snaps []Snapshot) []int {
	out := make([]int, len(snaps))
	for i, s := range snaps {
		out[i] = s.Depth()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildSnapshots_PathTracking(t *testing.T) {
	lines := mustLines(t,
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"A. Product Data",
		"1. Catalog sheets",
		"a. Pump curves",
		"2. Wiring diagrams",
		"B. Shop Drawings",
		"1.5 INFORMATIONAL SUBMITTALS",
		"SECTION 230500",
	)
	snaps, err := BuildSnapshots(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 2, 3, 4, 5, 4, 3, 2, 1, 0}
	if got := depths(snaps); !equalInts(got, want) {
		t.Fatalf("depths = %v, want %v", got, want)
	}

	for i, s := range snaps {
		for lvl, line := range s {
			if int(line.Level) != lvl {
				t.Errorf("snapshot %d: entry %d has level %d", i, lvl, line.Level)
			}
		}
	}

	// Later truncation must not leak into earlier snapshots.
	if snaps[4][3].Text != "1. Catalog sheets" {
		t.Errorf("snapshot 4 mutated: %q", snaps[4][3].Text)
	}
	if snaps[5][3].Text != "2. Wiring diagrams" {
		t.Errorf("expected sibling to replace item, got %q", snaps[5][3].Text)
	}
}

func TestBuildSnapshots_LevelJump(t *testing.T) {
	lines := mustLines(t,
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"1. Valve schedule",
	)
	_, err := BuildSnapshots(lines)
	if !errors.Is(err, ErrLevelJump) {
		t.Fatalf("expected ErrLevelJump, got %v", err)
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if fe.Line != 3 {
		t.Errorf("expected line 3, got %d", fe.Line)
	}
	if !strings.Contains(err.Error(), "1. Valve schedule") {
		t.Errorf("expected error to name the line, got %q", err.Error())
	}
}

func TestBuildSnapshots_FirstLineMustBeSection(t *testing.T) {
	_, err := BuildSnapshots(mustLines(t, "A. Product Data"))
	if !errors.Is(err, ErrLevelJump) {
		t.Fatalf("expected ErrLevelJump, got %v", err)
	}
}

func TestBuildSnapshots_Empty(t *testing.T) {
	snaps, err := BuildSnapshots(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 1 || snaps[0].Depth() != 0 {
		t.Fatalf("expected a single empty snapshot, got %v", snaps)
	}
	if leaves := SelectLeaves(snaps); len(leaves) != 0 {
		t.Errorf("expected no leaves, got %d", len(leaves))
	}
}

func TestSnapshot_Category(t *testing.T) {
	snaps, err := BuildSnapshots(mustLines(t,
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"A. Product Data: For each type of product.",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := snaps[2].Category()
	if !ok || c != "Product Data" {
		t.Errorf("Category() = %q, %v", c, ok)
	}
	if _, ok := snaps[1].Category(); ok {
		t.Error("expected no category above the type level")
	}
}

func TestFilterCategory_ShopDrawings(t *testing.T) {
	snaps, err := BuildSnapshots(mustLines(t,
		"SECTION 230500",
		"1.5 INFORMATIONAL SUBMITTALS",
		"A. Shop Drawings",
		"1. Valve schedule",
		"2. Piping layout",
		"B. Product Data",
		"1. Valve cut sheets",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filtered := FilterCategory(snaps, ShopDrawings)
	if got, want := depths(filtered), []int{1, 2, 3, 3, 4, 0}; !equalInts(got, want) {
		t.Fatalf("depths = %v, want %v", got, want)
	}

	leaves := SelectLeaves(filtered)
	if len(leaves) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(leaves))
	}
	if leaves[0][2].Text != "A. Shop Drawings" || leaves[0].Depth() != 3 {
		t.Errorf("expected bare Shop Drawings leaf, got %v", leaves[0])
	}
	if leaves[1][3].Text != "1. Valve cut sheets" {
		t.Errorf("expected product data item leaf, got %v", leaves[1])
	}
}

func TestFilterCategory_MatchesWithinCategory(t *testing.T) {
	snaps, err := BuildSnapshots(mustLines(t,
		"SECTION 230500",
		"1.4 ACTION SUBMITTALS",
		"A. Coordination Shop Drawings: Plans drawn to scale.",
		"1. Ceiling plenum layout",
		"B. Shop Drawing Schedule",
		"1. Submittal dates",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filtered := FilterCategory(snaps, ShopDrawings)
	if got, want := depths(filtered), []int{1, 2, 3, 3, 4, 0}; !equalInts(got, want) {
		t.Fatalf("depths = %v, want %v", got, want)
	}
	for _, s := range filtered {
		if s.Depth() == 4 && s[2].Text != "B. Shop Drawing Schedule" {
			t.Errorf("expected only the non-matching category to keep items, got %v", s)
		}
	}
}

func TestSelectLeaves(t *testing.T) {
	snaps, err := BuildSnapshots(mustLines(t,
		"SECTION 260500",
		"1.4 ACTION SUBMITTALS",
		"A. Product Data",
		"1. Catalog sheets",
		"a. Pump curves",
		"b. Motor data",
		"2. Wiring diagrams",
		"B. Samples for Verification",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leaves := SelectLeaves(snaps)
	want := []string{"a. Pump curves", "b. Motor data", "2. Wiring diagrams", "B. Samples for Verification"}
	if len(leaves) != len(want) {
		t.Fatalf("expected %d leaves, got %d", len(want), len(leaves))
	}
	for i, w := range want {
		last := leaves[i][leaves[i].Depth()-1]
		if last.Text != w {
			t.Errorf("leaf[%d]: expected %q, got %q", i, w, last.Text)
		}
	}
}
