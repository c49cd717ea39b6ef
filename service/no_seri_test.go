package service

import "testing"

func TestFormatNoSeri(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "0000001"},
		{42, "0000042"},
		{9999999, "9999999"},
	}
	for _, tc := range cases {
		if got := FormatNoSeri(tc.n); got != tc.want {
			t.Errorf("FormatNoSeri(%d) = %q, mau %q", tc.n, got, tc.want)
		}
	}
}

func TestNoSeriBerikutnya(t *testing.T) {
	got := NoSeriBerikutnya(0, 3)
	want := []string{"0000001", "0000002", "0000003"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, mau %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("urutan[%d] = %q, mau %q", i, got[i], want[i])
		}
	}

	// lanjut dari basis yang sudah ada: M existing -> {M+1..M+N}
	got = NoSeriBerikutnya(5, 2)
	if got[0] != "0000006" || got[1] != "0000007" {
		t.Errorf("lanjutan dari 5 = %v, mau [0000006 0000007]", got)
	}
}

func TestNoSeriBerikutnyaMonoton(t *testing.T) {
	serials := NoSeriBerikutnya(120, 50)
	prev := ""
	seen := map[string]bool{}
	for _, s := range serials {
		if len(s) != 7 {
			t.Fatalf("no seri %q bukan 7 digit", s)
		}
		if s <= prev {
			t.Fatalf("no seri %q tidak naik dari %q", s, prev)
		}
		if seen[s] {
			t.Fatalf("no seri %q dobel", s)
		}
		seen[s] = true
		prev = s
	}
}
