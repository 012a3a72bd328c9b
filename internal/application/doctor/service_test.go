package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/codescout/internal/domain"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubRunner struct {
	outcome domain.CommandOutcome
}

func (s stubRunner) Run(context.Context, domain.CommandSpec) domain.CommandOutcome {
	return s.outcome
}

func testConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Executables:         domain.ExecutableSettings{HostingCLI: "gh", RegistryCLI: "npm"},
	}
}

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	t.Fatalf("check %q missing from %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunReportsMissingBinaries(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: testConfig()},
		Runner:         stubRunner{outcome: domain.CommandOutcome{Result: domain.TextResult("ok")}},
		LookPath: func(file string) (string, error) {
			if file == "gh" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + file, nil
		},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if check := checkByName(t, report, "Hosting CLI"); check.Status != domain.HealthError {
		t.Fatalf("hosting check = %+v, want error", check)
	}
	if check := checkByName(t, report, "Registry CLI"); check.Status != domain.HealthOK {
		t.Fatalf("registry check = %+v, want ok", check)
	}
	if report.Healthy() {
		t.Fatal("report with a failing check must not be healthy")
	}
}

func TestRunWarnsOnAuthFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: testConfig()},
		Runner: stubRunner{outcome: domain.CommandOutcome{
			Result: domain.ErrorResult("You are not logged into any GitHub hosts"),
		}},
		LookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if check := checkByName(t, report, "Hosting auth"); check.Status != domain.HealthWarn {
		t.Fatalf("auth check = %+v, want warn", check)
	}
}

func TestRunSurfacesConfigLoadFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{err: errors.New("corrupt yaml")},
	}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if check := checkByName(t, report, "Config file"); check.Status != domain.HealthError {
		t.Fatalf("config check = %+v, want error", check)
	}
}
