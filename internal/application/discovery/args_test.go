package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/codescout/internal/domain"
)

func TestCodeSearchSpec(t *testing.T) {
	spec := codeSearchSpec(domain.CodeSearchRequest{
		Query:    "NewRouter",
		Language: "go",
		Owner:    "gorilla",
		Limit:    5,
	})

	if spec.Executable != domain.ExecutableHosting || spec.Subcommand != "search" {
		t.Fatalf("spec = %+v", spec)
	}
	want := []string{
		"code", "NewRouter", "--json", "path,repository,textMatches",
		"--language", "go", "--owner", "gorilla", "--limit", "5",
	}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestRepoSearchSpecDefaultsLimit(t *testing.T) {
	spec := repoSearchSpec(domain.RepoSearchRequest{Query: "terminal ui"})
	want := []string{
		"repos", "terminal ui", "--json", "fullName,description,stargazersCount,updatedAt",
		"--limit", "30",
	}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestFileContentSpecEscapesPathAndRef(t *testing.T) {
	spec := fileContentSpec(domain.FileContentRequest{
		Owner: "acme",
		Repo:  "widgets",
		Path:  "docs/design notes.md",
	}, "feat/new api")

	want := []string{"repos/acme/widgets/contents/docs/design%20notes.md?ref=feat%2Fnew+api"}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	if spec.Subcommand != "api" {
		t.Fatalf("subcommand = %q, want api", spec.Subcommand)
	}
}

func TestRepoStructureSpecRecursive(t *testing.T) {
	spec := repoStructureSpec(domain.RepoStructureRequest{
		Owner:     "acme",
		Repo:      "widgets",
		Recursive: true,
	}, "main")

	want := []string{"repos/acme/widgets/git/trees/main?recursive=1"}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageViewSpecWithVersionAndFields(t *testing.T) {
	spec := packageViewSpec(domain.PackageViewRequest{
		Name:    "react",
		Version: "18.2.0",
		Fields:  []string{"repository.url", "dependencies"},
	})

	if spec.Executable != domain.ExecutableRegistry || spec.Subcommand != "view" {
		t.Fatalf("spec = %+v", spec)
	}
	want := []string{"react@18.2.0", "repository.url", "dependencies", "--json"}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageSearchSpec(t *testing.T) {
	spec := packageSearchSpec(domain.PackageSearchRequest{Query: "http client", Limit: 3})
	want := []string{"http client", "--json", "--searchlimit", "3"}
	if diff := cmp.Diff(want, spec.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}
