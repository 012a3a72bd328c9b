// Package discovery orchestrates the code- and package-discovery
// operations: cache wrap, command execution, branch resolution, redaction,
// and audit logging.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/codescout/internal/domain"
	"github.com/doeshing/codescout/internal/ports"
)

// Service exposes the discovery operations to the tool layer. All
// dependencies are injected; the cache instance in particular is
// constructed by the container, never a package global.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Runner         ports.CommandRunner
	Classifier     ports.Classifier
	Cache          ports.CacheRepository
	Redactor       ports.Redactor
	Audit          ports.AuditRepository
	Logger         ports.Logger
}

func (s *Service) ready() error {
	if s.ConfigProvider == nil || s.Runner == nil || s.Classifier == nil ||
		s.Cache == nil || s.Logger == nil {
		return errors.New("discovery.Service dependencies not satisfied")
	}
	return nil
}

// SearchCode runs a code search through the hosting CLI.
func (s *Service) SearchCode(ctx context.Context, req domain.CodeSearchRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.cached(ctx, "search_code", domain.CategoryCodeSearch, req, func(ctx context.Context) domain.Result {
		return s.Runner.Run(ctx, codeSearchSpec(req)).Result
	}), nil
}

// SearchRepositories runs a repository search through the hosting CLI.
func (s *Service) SearchRepositories(ctx context.Context, req domain.RepoSearchRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.cached(ctx, "search_repositories", domain.CategoryRepoSearch, req, func(ctx context.Context) domain.Result {
		return s.Runner.Run(ctx, repoSearchSpec(req)).Result
	}), nil
}

// FetchFileContent retrieves one file, probing candidate branches when the
// requested ref may not exist.
func (s *Service) FetchFileContent(ctx context.Context, req domain.FileContentRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.resolved(ctx, "fetch_file_content", domain.CategoryFileContent, req, req.Branch,
		func(ctx context.Context, branch string) domain.CommandOutcome {
			return s.Runner.Run(ctx, fileContentSpec(req, branch))
		})
}

// ViewRepoStructure lists a repository tree, probing candidate branches
// when the requested ref may not exist.
func (s *Service) ViewRepoStructure(ctx context.Context, req domain.RepoStructureRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.resolved(ctx, "view_repo_structure", domain.CategoryRepoStructure, req, req.Branch,
		func(ctx context.Context, branch string) domain.CommandOutcome {
			return s.Runner.Run(ctx, repoStructureSpec(req, branch))
		})
}

// SearchPackages runs a registry search.
func (s *Service) SearchPackages(ctx context.Context, req domain.PackageSearchRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.cached(ctx, "search_packages", domain.CategoryPackageSearch, req, func(ctx context.Context) domain.Result {
		return s.Runner.Run(ctx, packageSearchSpec(req)).Result
	}), nil
}

// ViewPackage shows registry metadata for one package.
func (s *Service) ViewPackage(ctx context.Context, req domain.PackageViewRequest) (domain.Result, error) {
	if err := s.ready(); err != nil {
		return domain.Result{}, err
	}
	return s.cached(ctx, "view_package", domain.CategoryPackageView, req, func(ctx context.Context) domain.Result {
		return s.Runner.Run(ctx, packageViewSpec(req)).Result
	}), nil
}

// cached memoizes a plain producer under the operation's category.
func (s *Service) cached(ctx context.Context, tool, category string, params any, producer ports.Producer) domain.Result {
	key := s.Cache.Key(category, params)
	start := time.Now()
	result, hit := s.Cache.Wrap(ctx, key, producer, domain.CacheOptions{})
	result = s.redact(result)
	s.record(domain.AuditRecord{
		Tool:           tool,
		Category:       category,
		CacheKey:       key,
		CacheHit:       hit,
		IsError:        result.IsError,
		Classification: s.classification(result),
		DurationMS:     time.Since(start).Milliseconds(),
	})
	return result
}

// resolved memoizes a branch-resolving producer. The fallback notice is
// baked into the Result before caching: identical parameters resolve
// identically, so a cached notice stays correct.
func (s *Service) resolved(ctx context.Context, tool, category string, params any, requested string, attempt AttemptFunc) (domain.Result, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Result{}, fmt.Errorf("load config: %w", err)
	}
	candidates := domain.BranchCandidates(requested, cfg.Branches.Candidates)
	resolver := &Resolver{Classifier: s.Classifier, Logger: s.Logger}

	key := s.Cache.Key(category, params)
	start := time.Now()
	var usedBranch string
	result, hit := s.Cache.Wrap(ctx, key, func(ctx context.Context) domain.Result {
		resolution := resolver.Resolve(ctx, requested, candidates, attempt)
		usedBranch = resolution.UsedBranch
		return renderResolution(resolution)
	}, domain.CacheOptions{})
	result = s.redact(result)
	s.record(domain.AuditRecord{
		Tool:           tool,
		Category:       category,
		CacheKey:       key,
		CacheHit:       hit,
		IsError:        result.IsError,
		Classification: s.classification(result),
		UsedBranch:     usedBranch,
		DurationMS:     time.Since(start).Milliseconds(),
	})
	return result, nil
}

// renderResolution turns a finished resolution into the Result handed
// upward, surfacing the fallback notice or the full attempt trail.
func renderResolution(resolution domain.BranchResolution) domain.Result {
	if resolution.Succeeded {
		result := resolution.Result
		if resolution.FellBack {
			notice := fmt.Sprintf("note: branch %q not found, fell back to %q",
				resolution.RequestedBranch, resolution.UsedBranch)
			result.Content = append([]domain.ContentBlock{{Type: "text", Text: notice}}, result.Content...)
		}
		return result
	}
	return domain.ErrorResult(fmt.Sprintf("tried branches: %s; last error: %s",
		strings.Join(resolution.AttemptedBranches(), ", "), resolution.Result.Text()))
}

func (s *Service) redact(result domain.Result) domain.Result {
	if s.Redactor == nil {
		return result
	}
	blocks := make([]domain.ContentBlock, len(result.Content))
	for i, block := range result.Content {
		block.Text = s.Redactor.Redact(block.Text)
		blocks[i] = block
	}
	return domain.Result{Content: blocks, IsError: result.IsError}
}

func (s *Service) classification(result domain.Result) domain.Classification {
	if !result.IsError {
		return ""
	}
	return s.Classifier.Classify(domain.CommandOutcome{Result: result})
}

func (s *Service) record(record domain.AuditRecord) {
	if s.Audit == nil {
		return
	}
	if err := s.Audit.Save(record); err != nil {
		s.Logger.Warn("audit save failed", map[string]interface{}{"error": err.Error()})
	}
}
