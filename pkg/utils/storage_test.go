package utils

import "testing"

func TestPackageFromCmdline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nul terminated", "com.gonewx.armadness\x00", "com.gonewx.armadness"},
		{"with args", "com.gonewx.armadness\x00--flag\x00", "com.gonewx.armadness"},
		{"newline", "com.gonewx.armadness\n", "com.gonewx.armadness"},
		{"no terminator", "app", "app"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := packageFromCmdline([]byte(tt.in)); got != tt.want {
				t.Errorf("packageFromCmdline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
