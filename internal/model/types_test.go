package model

import "testing"

func TestGeneInputWired(t *testing.T) {
	cases := []struct {
		gene Gene
		want bool
	}{
		{Gene{Conn: -1}, true},
		{Gene{Conn: -100}, true},
		{Gene{Conn: 0}, false},
		{Gene{Conn: 5}, false},
		{Gene{Conn: -1, NoOp: true}, false},
	}
	for _, c := range cases {
		if got := c.gene.InputWired(); got != c.want {
			t.Fatalf("InputWired(%+v) = %t, want %t", c.gene, got, c.want)
		}
	}
}
