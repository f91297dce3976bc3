package productcontroller

import "testing"

func validRow() []string {
	return []string{"", "Brake Pad Set", "Front brake pads for sedans", "49.99", "Toyota", "Camry", "2018", "new", "25", "3"}
}

func TestParseProductRow(t *testing.T) {
	id, p, err := parseProductRow(validRow())
	if err != nil {
		t.Fatalf("valid row rejected: %v", err)
	}
	if id != 0 {
		t.Errorf("id = %d, want 0 for a create row", id)
	}
	if p.Name != "Brake Pad Set" || p.Slug != "brake-pad-set" {
		t.Errorf("name/slug = %q/%q", p.Name, p.Slug)
	}
	if p.Price != 49.99 || p.Year != 2018 || p.Stock != 25 {
		t.Errorf("parsed numerics wrong: %+v", p)
	}
	if p.CategoryID == nil || *p.CategoryID != 3 {
		t.Errorf("category id = %v, want 3", p.CategoryID)
	}
}

func TestParseProductRowUpdateID(t *testing.T) {
	row := validRow()
	row[0] = "17"
	id, _, err := parseProductRow(row)
	if err != nil {
		t.Fatalf("row with id rejected: %v", err)
	}
	if id != 17 {
		t.Errorf("id = %d, want 17", id)
	}
}

func TestParseProductRowRejectsInvalid(t *testing.T) {
	mutate := func(i int, v string) []string {
		row := validRow()
		row[i] = v
		return row
	}

	tests := []struct {
		name string
		row  []string
	}{
		{"short name", mutate(1, "ab")},
		{"short description", mutate(2, "too short")},
		{"zero price", mutate(3, "0")},
		{"negative price", mutate(3, "-5")},
		{"unparseable price", mutate(3, "free")},
		{"missing make", mutate(4, "")},
		{"missing model", mutate(5, "")},
		{"year below range", mutate(6, "1899")},
		{"year not a number", mutate(6, "old")},
		{"bad condition", mutate(7, "mint")},
		{"negative stock", mutate(8, "-1")},
		{"bad category id", mutate(9, "abc")},
		{"bad row id", mutate(0, "x")},
		{"truncated row", []string{"", "Brake Pad Set"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parseProductRow(tt.row); err == nil {
				t.Errorf("row %v accepted, want rejection", tt.row)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brake Pad Set", "brake-pad-set"},
		{"K&N Air Filter (2019)", "k-n-air-filter-2019"},
		{"  spaced  out  ", "spaced-out"},
		{"ALL CAPS", "all-caps"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
