package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBranchCandidatesOrderAndDedup(t *testing.T) {
	conventions := []string{"main", "master", "develop", "trunk"}

	tests := []struct {
		name      string
		requested string
		want      []string
	}{
		{
			name:      "requested branch leads",
			requested: "feature-x",
			want:      []string{"feature-x", "main", "master", "develop", "trunk"},
		},
		{
			name:      "requested convention branch not duplicated",
			requested: "master",
			want:      []string{"master", "main", "develop", "trunk"},
		},
		{
			name:      "empty request uses conventions only",
			requested: "",
			want:      []string{"main", "master", "develop", "trunk"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := BranchCandidates(test.requested, conventions)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("candidates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
