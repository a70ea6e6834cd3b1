package step

import (
	"errors"
	"slices"
	"testing"
)

func TestList_AppendAndValues(t *testing.T) {
	l := FromValues([]int{4, 8})
	l.Append(15)

	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if got := l.Values(); !slices.Equal(got, []int{4, 8, 15}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestList_DeleteAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
		err   error
	}{
		{"head", 0, []int{2, 3, 4}, nil},
		{"middle", 2, []int{1, 2, 4}, nil},
		{"tail", 3, []int{1, 2, 3}, nil},
		{"negative", -1, []int{1, 2, 3, 4}, ErrInvalidIndex},
		{"past end", 4, []int{1, 2, 3, 4}, ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromValues([]int{1, 2, 3, 4})
			err := l.DeleteAt(tt.index)
			if !errors.Is(err, tt.err) {
				t.Fatalf("DeleteAt(%d) = %v, want %v", tt.index, err, tt.err)
			}
			if got := l.Values(); !slices.Equal(got, tt.want) {
				t.Errorf("Values() = %v, want %v", got, tt.want)
			}
			if l.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.want))
			}
		})
	}
}

func TestList_CloneIsIndependent(t *testing.T) {
	l := FromValues([]int{1, 2})
	c := l.Clone()
	c.Append(3)
	c.Head.Value = 9

	if got := l.Values(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("source list changed: %v", got)
	}
}

func TestList_NilIsEmpty(t *testing.T) {
	var l *List
	if l.Len() != 0 {
		t.Error("nil list has length")
	}
	for range l.All() {
		t.Error("nil list yielded a node")
	}
}
