package strcase

import "testing"

func TestToLowerCamel(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"FullName":       "fullName",
		"IELTS":          "ielts",
		"URLPath":        "urlPath",
		"ID":             "id",
		"MoveInYear":     "moveInYear",
		"alreadyCamel":   "alreadyCamel",
		"TargetTestDate": "targetTestDate",
	}

	for in, want := range tests {
		if got := ToLowerCamel(in); got != want {
			t.Errorf("ToLowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}
