// SPDX-License-Identifier: EPL-2.0

package huffman

import (
	"errors"
	"testing"
)

func TestRebuild_EmptyTable(t *testing.T) {
	t.Parallel()

	_, err := Rebuild(CodeTable{})
	if err != ErrNoSymbols {
		t.Errorf("Rebuild() error = %v, want ErrNoSymbols", err)
	}
}

func TestRebuild_RoundTripsWithCodes(t *testing.T) {
	t.Parallel()

	freq := map[int16]int{5: 3, -3: 2, 7: 1, 100: 9, -100: 4}
	codes := Codes(mustBuild(t, freq))

	root, err := Rebuild(codes)
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	// Every stored code must lead to a leaf carrying its sample.
	for v, code := range codes {
		cur := root
		for i := 0; i < len(code); i++ {
			if code[i] == '0' {
				cur = cur.Left
			} else {
				cur = cur.Right
			}
			if cur == nil {
				t.Fatalf("code %q for value %d walks off the tree", code, v)
			}
		}
		if !cur.Leaf || cur.Sample != v {
			t.Errorf("code %q ends at %+v, want leaf %d", code, cur, v)
		}
	}
}

func TestRebuild_SingleValueConvention(t *testing.T) {
	t.Parallel()

	root, err := Rebuild(CodeTable{42: "0"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	if root.Leaf {
		t.Fatal("root is a leaf, want synthetic internal root")
	}
	if root.Left == nil || !root.Left.Leaf || root.Left.Sample != 42 {
		t.Errorf("root.Left = %+v, want leaf 42", root.Left)
	}
}

func TestRebuild_InvalidTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table CodeTable
	}{
		{"PrefixOfLonger", CodeTable{1: "0", 2: "01"}},
		{"LongerThenPrefix", CodeTable{2: "01", 3: "0"}},
		{"DuplicateCode", CodeTable{1: "10", 2: "10"}},
		{"EmptyCode", CodeTable{1: ""}},
		{"BadCharacter", CodeTable{1: "0x1"}},
		{"SharedPrefixEndpoint", CodeTable{1: "1", 2: "10", 3: "11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Rebuild(tt.table)
			if !errors.Is(err, ErrInvalidCodeTable) {
				t.Errorf("Rebuild(%v) error = %v, want ErrInvalidCodeTable", tt.table, err)
			}
		})
	}
}

func TestDecode_Scenario(t *testing.T) {
	t.Parallel()

	root, err := Rebuild(CodeTable{5: "0", 7: "10", -3: "11"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	// [5 5 5 -3 -3 7] encoded
	bits := []byte{0, 0, 0, 1, 1, 1, 1, 1, 0}

	samples, err := root.Decode(bits)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []int16{5, 5, 5, -3, -3, 7}
	if len(samples) != len(want) {
		t.Fatalf("Decode() returned %d samples, want %d", len(samples), len(want))
	}
	for i, v := range want {
		if samples[i] != v {
			t.Errorf("samples[%d] = %d, want %d", i, samples[i], v)
		}
	}
}

func TestDecode_EmptyBits(t *testing.T) {
	t.Parallel()

	root, err := Rebuild(CodeTable{1: "0", 2: "1"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	samples, err := root.Decode(nil)
	if err != nil {
		t.Errorf("Decode(nil) error = %v, want nil", err)
	}
	if len(samples) != 0 {
		t.Errorf("Decode(nil) returned %d samples, want 0", len(samples))
	}
}

func TestDecode_TruncatedMidCode(t *testing.T) {
	t.Parallel()

	root, err := Rebuild(CodeTable{5: "0", 7: "10", -3: "11"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	// Ends after the first bit of a two-bit code.
	_, err = root.Decode([]byte{0, 1})
	if !errors.Is(err, ErrTruncatedBitstream) {
		t.Errorf("Decode() error = %v, want ErrTruncatedBitstream", err)
	}
}

func TestDecode_AbsentBranch(t *testing.T) {
	t.Parallel()

	// Single-value table: the synthetic root has no right child.
	root, err := Rebuild(CodeTable{42: "0"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	_, err = root.Decode([]byte{1})
	if !errors.Is(err, ErrTruncatedBitstream) {
		t.Errorf("Decode() error = %v, want ErrTruncatedBitstream", err)
	}
}

func TestDecode_SingleValueRun(t *testing.T) {
	t.Parallel()

	root, err := Rebuild(CodeTable{-12: "0"})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	bits := make([]byte, 1000)
	samples, err := root.Decode(bits)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(samples) != 1000 {
		t.Fatalf("Decode() returned %d samples, want 1000", len(samples))
	}
	for i, s := range samples {
		if s != -12 {
			t.Fatalf("samples[%d] = %d, want -12", i, s)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	freq := map[int16]int{}
	for v := int16(0); v < 256; v++ {
		freq[v] = int(v) + 1
	}
	codes := Codes(mustBuildB(b, freq))

	root, err := Rebuild(codes)
	if err != nil {
		b.Fatal(err)
	}

	var bits []byte
	for v := int16(0); v < 256; v++ {
		code := codes[v]
		for i := 0; i < len(code); i++ {
			bits = append(bits, code[i]-'0')
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := root.Decode(bits); err != nil {
			b.Fatal(err)
		}
	}
}

func mustBuildB(b *testing.B, freq map[int16]int) *Node {
	b.Helper()

	root, err := Build(freq)
	if err != nil {
		b.Fatal(err)
	}
	return root
}
