package workgen

import "testing"

func TestIsCompatibleVersion(t *testing.T) {
	tests := []struct {
		stored, current string
		want            bool
		wantErr         bool
	}{
		{"v1.0.0", "v1.0.0", true, false},
		{"v1.0.0", "v1.2.3", true, false},
		{"v2.0.0", "v1.0.0", false, false},
		{"1.0.0", "v1.0.0", false, true},
		{"v1.0.0", "garbage", false, true},
	}

	for _, tt := range tests {
		got, err := IsCompatibleVersion(tt.stored, tt.current)
		if tt.wantErr {
			if err == nil {
				t.Errorf("IsCompatibleVersion(%q, %q): expected error", tt.stored, tt.current)
			}
			continue
		}
		if err != nil {
			t.Errorf("IsCompatibleVersion(%q, %q) failed: %v", tt.stored, tt.current, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsCompatibleVersion(%q, %q) = %v, want %v", tt.stored, tt.current, got, tt.want)
		}
	}
}
