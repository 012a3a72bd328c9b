package discovery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/doeshing/codescout/internal/domain"
)

// Argument builders are pure flag mapping: request fields map 1:1 to CLI
// flags, always as an argv vector.

func codeSearchSpec(req domain.CodeSearchRequest) domain.CommandSpec {
	args := []string{"code", req.Query, "--json", "path,repository,textMatches"}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}
	if req.Owner != "" {
		args = append(args, "--owner", req.Owner)
	}
	if req.Repo != "" {
		args = append(args, "--repo", req.Repo)
	}
	if req.Extension != "" {
		args = append(args, "--extension", req.Extension)
	}
	if req.Filename != "" {
		args = append(args, "--filename", req.Filename)
	}
	args = append(args, "--limit", strconv.Itoa(limitOrDefault(req.Limit)))
	return domain.CommandSpec{
		Executable: domain.ExecutableHosting,
		Subcommand: "search",
		Args:       args,
	}
}

func repoSearchSpec(req domain.RepoSearchRequest) domain.CommandSpec {
	args := []string{"repos", req.Query, "--json", "fullName,description,stargazersCount,updatedAt"}
	if req.Owner != "" {
		args = append(args, "--owner", req.Owner)
	}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}
	if req.Topic != "" {
		args = append(args, "--topic", req.Topic)
	}
	if req.Stars != "" {
		args = append(args, "--stars", req.Stars)
	}
	if req.Sort != "" {
		args = append(args, "--sort", req.Sort)
	}
	args = append(args, "--limit", strconv.Itoa(limitOrDefault(req.Limit)))
	return domain.CommandSpec{
		Executable: domain.ExecutableHosting,
		Subcommand: "search",
		Args:       args,
	}
}

func fileContentSpec(req domain.FileContentRequest, branch string) domain.CommandSpec {
	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s?ref=%s",
		req.Owner, req.Repo, escapePath(req.Path), url.QueryEscape(branch))
	return domain.CommandSpec{
		Executable: domain.ExecutableHosting,
		Subcommand: "api",
		Args:       []string{endpoint},
	}
}

func repoStructureSpec(req domain.RepoStructureRequest, branch string) domain.CommandSpec {
	endpoint := fmt.Sprintf("repos/%s/%s/git/trees/%s", req.Owner, req.Repo, url.PathEscape(branch))
	if req.Recursive {
		endpoint += "?recursive=1"
	}
	return domain.CommandSpec{
		Executable: domain.ExecutableHosting,
		Subcommand: "api",
		Args:       []string{endpoint},
	}
}

func packageSearchSpec(req domain.PackageSearchRequest) domain.CommandSpec {
	args := []string{req.Query, "--json", "--searchlimit", strconv.Itoa(limitOrDefault(req.Limit))}
	return domain.CommandSpec{
		Executable: domain.ExecutableRegistry,
		Subcommand: "search",
		Args:       args,
	}
}

func packageViewSpec(req domain.PackageViewRequest) domain.CommandSpec {
	name := req.Name
	if req.Version != "" {
		name += "@" + req.Version
	}
	args := []string{name}
	args = append(args, req.Fields...)
	args = append(args, "--json")
	return domain.CommandSpec{
		Executable: domain.ExecutableRegistry,
		Subcommand: "view",
		Args:       args,
	}
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return 30
	}
	return limit
}

// escapePath escapes each path segment while keeping the separators, so
// "dir with space/file.go" stays a valid API path.
func escapePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
