package cli

import (
	"github.com/spf13/cobra"

	"github.com/dublyo/dockergen/internal/detector"
	"github.com/dublyo/dockergen/internal/generator"
	"github.com/dublyo/dockergen/internal/scanner"
)

// DetectionOutput is the JSON output for detect command
type DetectionOutput struct {
	Detected        bool              `json:"detected"`
	Type            string            `json:"type"`
	Language        string            `json:"language,omitempty"`
	Provider        string            `json:"provider,omitempty"`
	Description     string            `json:"description,omitempty"`
	ManifestPresent bool              `json:"manifestPresent"`
	ManifestError   string            `json:"manifestError,omitempty"`
	Dependencies    []string          `json:"dependencies,omitempty"`
	Candidates      []CandidateOutput `json:"candidates,omitempty"`
}

// CandidateOutput represents a candidate in JSON output
type CandidateOutput struct {
	Provider string `json:"provider"`
	Type     string `json:"type"`
}

// RuleListOutput is the JSON output of detect --list
type RuleListOutput struct {
	Count     int              `json:"count"`
	Rules     []RuleOutput     `json:"rules"`
	Templates []TemplateOutput `json:"templates"`
}

// RuleOutput describes one detection rule
type RuleOutput struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// TemplateOutput describes one template family
type TemplateOutput struct {
	Family               string `json:"family"`
	MultistageSelectable bool   `json:"multistageSelectable"`
}

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Detect the project type without generating files",
	Long: `Detect the project's type without generating any files.

Rules are evaluated in a fixed order and the first match wins. With --all,
every rule that matched is listed in evaluation order, which shows why a
project with several markers got the type it did.

Examples:
  dockergen detect .
  dockergen detect --all ./my-project
  dockergen detect --all --limit 2 ./my-project
  dockergen detect --json ./my-project
  dockergen detect --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().Bool("all", false, "Show all candidates, not just the best match")
	detectCmd.Flags().Int("limit", 0, "With --all, show at most this many candidates (0 = no limit)")
	detectCmd.Flags().Bool("list", false, "List the detection rules and templates instead of scanning")
}

func runDetect(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		return runListRules(cmd)
	}

	path, err := targetDir(args)
	if err != nil {
		return err
	}

	showAll, _ := cmd.Flags().GetBool("all")
	limit, _ := cmd.Flags().GetInt("limit")

	ctx, cancel := signalContext()
	defer cancel()

	printVerbose("Scanning %s...", path)
	result, scan, err := newService().Detect(ctx, path)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), detectionOutput(result, scan, showAll, limit))
	}

	outputDetectText(result, scan, showAll, limit)
	return nil
}

// candidates returns the matches to display; limit <= 0 keeps them all
func candidates(result *detector.DetectionResult, limit int) []detector.Candidate {
	if limit > 0 {
		return result.TopCandidates(limit)
	}
	return result.Candidates
}

func detectionOutput(result *detector.DetectionResult, scan *scanner.ScanResult, showAll bool, limit int) DetectionOutput {
	output := DetectionOutput{
		Detected:        result.Detected,
		Type:            result.Type.String(),
		Language:        result.Language,
		Provider:        result.Provider,
		Description:     result.Description,
		ManifestPresent: result.ManifestPresent,
	}
	if result.ManifestErr != nil {
		output.ManifestError = result.ManifestErr.Error()
	}
	if scan.HasManifest() {
		output.Dependencies = scan.Manifest.DependencyNames()
	}

	if showAll {
		for _, c := range candidates(result, limit) {
			output.Candidates = append(output.Candidates, CandidateOutput{
				Provider: c.Provider,
				Type:     c.Type.String(),
			})
		}
	}
	return output
}

func outputDetectText(result *detector.DetectionResult, scan *scanner.ScanResult, showAll bool, limit int) {
	if result.ManifestErr != nil {
		printer.Warn("%s ignored: %v", scanner.ManifestFile, result.ManifestErr)
	}

	if !result.Detected {
		printInfo("No project type detected")
		printInfo("")
		printInfo("Possible reasons:")
		printInfo("  - No package.json and no marker file (main.go, requirements.txt, index.html, ...)")
		printInfo("  - package.json is not valid JSON")
		printInfo("")
		printInfo("The generic template will be used; pass --type to choose one")
		return
	}

	printInfo("")
	printer.Field("Type", result.Type.String())
	printer.Field("Language", result.Language)
	printer.Field("Provider", result.Provider)
	if verbose && scan.HasManifest() {
		for _, dep := range scan.Manifest.DependencyNames() {
			printer.Field("Dependency", dep)
		}
	}
	printInfo("")

	if showAll && len(result.Candidates) > 1 {
		best := result.BestCandidate()
		printInfo("  All candidates:")
		for _, c := range candidates(result, limit) {
			marker := " "
			if c.Provider == best.Provider {
				marker = "→"
			}
			printInfo("  %s %s (%s)", marker, c.Type, c.Provider)
		}
		printInfo("")
	}
}

func runListRules(cmd *cobra.Command) error {
	registry := newService().Registry()

	var languages []string
	seen := make(map[string]bool)
	for _, p := range registry.Providers() {
		if !seen[p.Language()] {
			seen[p.Language()] = true
			languages = append(languages, p.Language())
		}
	}

	output := RuleListOutput{Count: registry.Count()}
	for _, lang := range languages {
		for _, p := range registry.ByLanguage(lang) {
			output.Rules = append(output.Rules, RuleOutput{
				Name:        p.Name(),
				Language:    p.Language(),
				Type:        p.Type().String(),
				Description: p.Description(),
				URL:         p.URL(),
			})
		}
	}
	for _, f := range generator.Families() {
		output.Templates = append(output.Templates, TemplateOutput{
			Family:               string(f),
			MultistageSelectable: generator.OffersBothShapes(f),
		})
	}

	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), output)
	}

	printInfo("Detection rules (%d, evaluated top to bottom):", output.Count)
	lang := ""
	for _, r := range output.Rules {
		if r.Language != lang {
			lang = r.Language
			printInfo("")
			printInfo("  %s", lang)
		}
		printInfo("    %-14s %-30s %s", r.Type, r.Description, r.URL)
	}
	printInfo("")
	printInfo("Templates:")
	for _, t := range output.Templates {
		shapes := "fixed shape"
		if t.MultistageSelectable {
			shapes = "multi-stage or single-stage"
		}
		printInfo("    %-14s %s", t.Family, shapes)
	}
	return nil
}
