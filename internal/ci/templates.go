// Package ci holds the pipeline templates written by `a11yscan ci init` and
// shown in the TUI's CI tab.
package ci

import (
	"fmt"
	"sort"
	"strings"
)

// Template is a CI pipeline file for one provider.
type Template struct {
	Provider string
	Path     string
	Content  string
}

// GitHubWorkflow blocks pull requests that introduce accessibility regressions.
const GitHubWorkflow = `# .github/workflows/a11y-check.yml
name: Accessibility CI

on: [pull_request]

jobs:
  a11y-scan:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4

      - name: Install dependencies
        run: npm ci

      - name: Build preview
        run: npm run build

      - name: Scan for a11y regressions
        uses: your-org/a11y-assistant-action@v1
        with:
          baseline: .a11y-baseline.json
          fail-on: critical,warning
          token: ${{ secrets.GITHUB_TOKEN }}

      - name: Upload report
        uses: actions/upload-artifact@v4
        with:
          name: a11y-report
          path: a11y-report.html
`

const gitlab = `stages: [scan]
a11y-scan:
  stage: scan
  image: golang:1.25
  script:
    - go install github.com/a11yscan/a11yscan@latest
    - a11yscan scan "$PREVIEW_URL" --format json --fail-on warning | tee a11yscan-report.json
  artifacts:
    when: always
    paths:
      - a11yscan-report.json
`

const bitbucket = `pipelines:
  pull-requests:
    '**':
      - step:
          name: a11yscan
          image: golang:1.25
          caches:
            - go
          script:
            - go install github.com/a11yscan/a11yscan@latest
            - a11yscan scan "$PREVIEW_URL" --format json --fail-on warning | tee a11yscan-report.json
          artifacts:
            - a11yscan-report.json
`

const azure = `trigger:
- main

pool:
  vmImage: 'ubuntu-latest'

steps:
- task: GoTool@0
  inputs:
    version: '1.25.x'
- script: |
    go install github.com/a11yscan/a11yscan@latest
    $(go env GOPATH)/bin/a11yscan scan "$(PREVIEW_URL)" --sarif --fail-on warning > a11yscan.sarif
  displayName: 'a11yscan'
- publish: a11yscan.sarif
  artifact: a11yscan-report
  condition: succeededOrFailed()
`

var templates = map[string]Template{
	"github":    {Provider: "github", Path: ".github/workflows/a11y-check.yml", Content: GitHubWorkflow},
	"gitlab":    {Provider: "gitlab", Path: ".gitlab-ci.yml", Content: gitlab},
	"bitbucket": {Provider: "bitbucket", Path: "bitbucket-pipelines.yml", Content: bitbucket},
	"azure":     {Provider: "azure", Path: "azure-pipelines.yml", Content: azure},
}

// Providers lists supported provider names in sorted order.
func Providers() []string {
	out := make([]string, 0, len(templates))
	for p := range templates {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the template for provider, case-insensitively.
func Lookup(provider string) (Template, error) {
	t, ok := templates[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return Template{}, fmt.Errorf("unknown provider %q (supported: %s)", provider, strings.Join(Providers(), ", "))
	}
	return t, nil
}
