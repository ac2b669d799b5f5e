package ui

import (
	"strings"
	"testing"

	"github.com/modu-ai/monocheck/internal/config"
	"github.com/modu-ai/monocheck/internal/structure"
	"github.com/modu-ai/monocheck/pkg/models"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	hint := "find . -name 'node_modules' -not -path './node_modules' -exec rm -rf {} +"

	tests := []struct {
		name   string
		report *structure.Report
		want   string
	}{
		{
			name:   "clean",
			report: &structure.Report{},
			want:   "✅ Monorepo structure is correct!\n",
		},
		{
			name: "cache directories with hint",
			report: &structure.Report{
				CacheDirectories: []models.Violation{
					models.NewCacheDirectoryViolation("apps/web/node_modules"),
					models.NewCacheDirectoryViolation("packages/ui/node_modules"),
				},
			},
			want: "❌ Rogue node_modules folders found:\n" +
				"   - apps/web/node_modules\n" +
				"   - packages/ui/node_modules\n" +
				"\n" +
				"   Run: " + hint + "\n",
		},
		{
			name: "manifest issues",
			report: &structure.Report{
				ManifestIssues: []models.Violation{
					models.NewManifestViolation("Root package.json missing 'workspaces' field"),
				},
			},
			want: "❌ Package.json issues:\n" +
				"   - Root package.json missing 'workspaces' field\n",
		},
		{
			name: "both categories in fixed order",
			report: &structure.Report{
				CacheDirectories: []models.Violation{models.NewCacheDirectoryViolation("apps/api/node_modules")},
				ManifestIssues:   []models.Violation{models.NewManifestViolation("Missing root package.json")},
			},
			want: "❌ Rogue node_modules folders found:\n" +
				"   - apps/api/node_modules\n" +
				"\n" +
				"   Run: " + hint + "\n" +
				"❌ Package.json issues:\n" +
				"   - Missing root package.json\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRenderer(config.DefaultRules(), true)
			if got := r.Render(tt.report); got != tt.want {
				t.Errorf("Render() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderer_CustomMarker(t *testing.T) {
	t.Parallel()

	rules := config.DefaultRules()
	rules.MarkerName = "bower_components"

	got := NewRenderer(rules, true).Render(&structure.Report{
		CacheDirectories: []models.Violation{models.NewCacheDirectoryViolation("apps/web/bower_components")},
	})
	want := "❌ Rogue bower_components folders found:\n" +
		"   - apps/web/bower_components\n" +
		"\n" +
		"   Run: find . -name 'bower_components' -not -path './bower_components' -exec rm -rf {} +\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "node_modules") {
		t.Errorf("Render() = %q, should not mention node_modules", got)
	}
}

func TestRenderer_ColorKeepsText(t *testing.T) {
	t.Parallel()

	r := NewRenderer(config.DefaultRules(), false)
	got := r.Render(&structure.Report{
		ManifestIssues: []models.Violation{models.NewManifestViolation("Missing root package.json")},
	})
	for _, want := range []string{ManifestHeader, "   - Missing root package.json"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, should contain %q", got, want)
		}
	}
}

func TestRenderer_RenderBanner(t *testing.T) {
	t.Parallel()

	if got := NewRenderer(config.DefaultRules(), true).RenderBanner(); got != Banner+"\n" {
		t.Errorf("RenderBanner() = %q", got)
	}
}
