package constants

import "testing"

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"report.pdf", "pdf"},
		{"NOTES.TXT", "txt"},
		{"archive.tar.gz", "gz"},
		{"report", ""},
		{"archive.", ""},
		{"q1/summary.xlsx", "xlsx"},
	}

	for _, tt := range tests {
		if got := ExtensionOf(tt.fileName); got != tt.want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestExtensionGroup(t *testing.T) {
	tests := []struct {
		ext     string
		group   FileGroup
		allowed bool
	}{
		{"pdf", FileGroupDocuments, true},
		{"png", FileGroupImages, true},
		{"7z", FileGroupArchives, true},
		{"csv", FileGroupSpreadsheets, true},
		{"mov", FileGroupVideo, true},
		{"wav", FileGroupAudio, true},
		{"exe", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		group, allowed := ExtensionGroup(tt.ext)
		if allowed != tt.allowed || group != tt.group {
			t.Errorf("ExtensionGroup(%q) = (%q, %v), want (%q, %v)", tt.ext, group, allowed, tt.group, tt.allowed)
		}
	}
}

// Every allowed extension must carry a group and a non-default icon, and
// the allow-list order must not drift from the lookup table.
func TestAllowedExtensionsAreFullyMapped(t *testing.T) {
	listed := AllowedExtensions()
	if len(listed) != len(allowedExtensions) {
		t.Fatalf("allow-list has %d entries, lookup table has %d", len(listed), len(allowedExtensions))
	}

	for _, ext := range listed {
		if _, ok := ExtensionGroup(ext); !ok {
			t.Errorf("listed extension %q is missing from the lookup table", ext)
		}
		if FileIcon(ext) == defaultFileIcon {
			t.Errorf("listed extension %q has no dedicated icon", ext)
		}
	}
}

func TestFileIconFallsBack(t *testing.T) {
	if got := FileIcon("exe"); got != defaultFileIcon {
		t.Errorf("FileIcon(%q) = %q, want the default icon", "exe", got)
	}
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in   string
		want StatusFilter
		ok   bool
	}{
		{"", StatusAll, true},
		{"all", StatusAll, true},
		{"active", StatusActive, true},
		{"completed", StatusCompleted, true},
		{"done", StatusFilter("done"), false},
	}

	for _, tt := range tests {
		got, ok := ParseStatusFilter(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStatusFilter(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		in   string
		want SortMode
		ok   bool
	}{
		{"", SortDefault, true},
		{"default", SortDefault, true},
		{"priority", SortPriority, true},
		{"due_date", SortDueDate, true},
		{"created", SortCreated, true},
		{"alphabetical", SortMode("alphabetical"), false},
	}

	for _, tt := range tests {
		got, ok := ParseSortMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSortMode(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Errorf("severity order broken: high=%d medium=%d low=%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if got := Priority("urgent").Rank(); got != PriorityMedium.Rank() {
		t.Errorf("unknown priority must rank as medium, got %d", got)
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority must not be valid")
	}
}
