package layout

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/notewall/pkg/errors"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		columns int
		want    [][]string
	}{
		{
			name:    "five items three columns",
			items:   []string{"a", "b", "c", "d", "e"},
			columns: 3,
			want:    [][]string{{"a", "d"}, {"b", "e"}, {"c"}},
		},
		{
			name:    "empty input",
			items:   nil,
			columns: 3,
			want:    [][]string{{}, {}, {}},
		},
		{
			name:    "single column keeps order",
			items:   []string{"x", "y", "z"},
			columns: 1,
			want:    [][]string{{"x", "y", "z"}},
		},
		{
			name:    "more columns than items",
			items:   []string{"a", "b"},
			columns: 4,
			want:    [][]string{{"a"}, {"b"}, {}, {}},
		},
		{
			name:    "exact multiple",
			items:   []string{"1", "2", "3", "4"},
			columns: 2,
			want:    [][]string{{"1", "3"}, {"2", "4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := Distribute(tt.items, tt.columns)
			if err != nil {
				t.Fatalf("Distribute() error = %v", err)
			}

			got := make([][]string, len(cols))
			for i, c := range cols {
				if c.Index != i {
					t.Errorf("column %d has Index %d", i, c.Index)
				}
				if c.Items == nil {
					t.Errorf("column %d has nil Items", i)
				}
				got[i] = c.Items
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Distribute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistributeInvalidColumnCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		cols, err := Distribute([]string{"a"}, n)
		if !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("Distribute(_, %d) error = %v, want INVALID_ARGUMENT", n, err)
		}
		if cols != nil {
			t.Errorf("Distribute(_, %d) returned partial result %v", n, cols)
		}
	}
}

func TestDistributeProperties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for c := 1; c <= 7; c++ {
			cols, err := Distribute(items, c)
			if err != nil {
				t.Fatalf("Distribute(%d items, %d) error = %v", n, c, err)
			}
			if len(cols) != c {
				t.Fatalf("Distribute(%d items, %d) = %d columns", n, c, len(cols))
			}

			seen := make(map[int]bool, n)
			for _, col := range cols {
				prev := -1
				for _, v := range col.Items {
					if v%c != col.Index {
						t.Errorf("item %d in column %d, want %d", v, col.Index, v%c)
					}
					if v <= prev {
						t.Errorf("column %d out of input order: %d after %d", col.Index, v, prev)
					}
					if seen[v] {
						t.Errorf("item %d appears twice", v)
					}
					seen[v] = true
					prev = v
				}
			}
			if len(seen) != n {
				t.Errorf("Distribute(%d items, %d) placed %d items", n, c, len(seen))
			}
		}
	}
}

func TestDistributeDeterministic(t *testing.T) {
	items := IDs("n1", "n2", "n3", "n4", "n5", "n6", "n7")
	first, err := Distribute(items, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := Distribute(items, 3)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestDistributeDoesNotAliasInput(t *testing.T) {
	items := []string{"a", "b", "c"}
	cols, _ := Distribute(items, 1)
	cols[0].Items[0] = "changed"
	if items[0] != "a" {
		t.Errorf("input mutated: %v", items)
	}
}

func BenchmarkDistribute(b *testing.B) {
	items := make([]string, 1000)
	for i := range items {
		items[i] = fmt.Sprintf("note-%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Distribute(items, 3)
	}
}
