package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectCategoryArgs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "bare category",
			in:   []string{"adhkar", "morning"},
			want: []string{"adhkar", "read", "morning"},
		},
		{
			name: "category with dhikr",
			in:   []string{"adhkar", "sleep", "sleep-3"},
			want: []string{"adhkar", "read", "sleep", "sleep-3"},
		},
		{
			name: "flags before category",
			in:   []string{"adhkar", "--dir", "/tmp/x", "evening"},
			want: []string{"adhkar", "--dir", "/tmp/x", "read", "evening"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"adhkar", "notes", "list"},
			want: []string{"adhkar", "notes", "list"},
		},
		{
			name: "unknown positional untouched",
			in:   []string{"adhkar", "midnight"},
			want: []string{"adhkar", "midnight"},
		},
		{
			name: "double dash",
			in:   []string{"adhkar", "--", "morning"},
			want: []string{"adhkar", "--", "read", "morning"},
		},
		{
			name: "no args",
			in:   []string{"adhkar"},
			want: []string{"adhkar"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectCategoryArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
