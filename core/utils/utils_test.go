package utils

import "testing"

func TestToInt64(t *testing.T) {
	cases := map[string]struct {
		want int64
		ok   bool
	}{
		"42":   {42, true},
		" 7 ":  {7, true},
		"0":    {0, false},
		"-3":   {0, false},
		"abc":  {0, false},
		"":     {0, false},
		"1e3":  {0, false},
	}
	for in, tc := range cases {
		got, ok := ToInt64(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ToInt64(%q) = %d, %v; want %d, %v", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestIsDigits(t *testing.T) {
	if !IsDigits("1234567890") {
		t.Error("expected digits to be accepted")
	}
	for _, s := range []string{"", "12a4", "١٢٣", " 12"} {
		if IsDigits(s) {
			t.Errorf("IsDigits(%q) = true", s)
		}
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !ComparePassword(hash, "s3cret") {
		t.Error("expected matching password")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("expected mismatch for wrong password")
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 10 || a == b {
		t.Errorf("unexpected ids %q %q", a, b)
	}
}

func TestStringPtr(t *testing.T) {
	if StringPtr("   ") != nil {
		t.Error("blank should map to nil")
	}
	if p := StringPtr(" Ann "); p == nil || *p != "Ann" {
		t.Errorf("got %v", p)
	}
	if Deref(nil) != "" {
		t.Error("Deref(nil) should be empty")
	}
}
