package items

import "testing"

func TestRebind(t *testing.T) {
	got := rebind(`SELECT a FROM t WHERE x = ? AND y LIKE ? ESCAPE '\' LIMIT ? OFFSET ?`)
	want := `SELECT a FROM t WHERE x = $1 AND y LIKE $2 ESCAPE '\' LIMIT $3 OFFSET $4`
	if got != want {
		t.Fatalf("rebind = %q, want %q", got, want)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		size, offset         int
		wantSize, wantOffset int
	}{
		{size: 0, offset: 0, wantSize: DefaultPageSize, wantOffset: 0},
		{size: 500, offset: -3, wantSize: MaxPageSize, wantOffset: 0},
		{size: 10, offset: 20, wantSize: 10, wantOffset: 20},
	}
	for _, tt := range tests {
		size, offset := normalizePage(tt.size, tt.offset)
		if size != tt.wantSize || offset != tt.wantOffset {
			t.Errorf("normalizePage(%d, %d) = (%d, %d)", tt.size, tt.offset, size, offset)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_a\b`); got != `50\%\_a\\b` {
		t.Fatalf("escapeLike = %q", got)
	}
}
