package importer

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics removes combining marks after NFD decomposition.
func stripDiacritics(s string) string {
	decomp := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeLabel folds a tag label or profile name for case-insensitive
// comparison: NFKC, diacritics stripped, lowercased, trimmed.
func normalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = stripDiacritics(s)
	return strings.ToLower(s)
}

// ResolveRootFolder picks the explicit override when given, otherwise
// the first root folder Radarr reports. Radarr has no notion of a
// default root, so first configured wins.
func ResolveRootFolder(ctx context.Context, lib Library, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override), nil
	}
	roots, err := lib.GetRootFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("get root folders: %w", err)
	}
	if len(roots) == 0 {
		return "", fmt.Errorf("radarr has no root folders configured")
	}
	return roots[0].Path, nil
}

// ResolveQualityProfile maps a numeric id or a profile name to a
// profile id. An empty want selects the first profile. A named miss is
// fatal, with a close-match hint when one exists.
func ResolveQualityProfile(ctx context.Context, lib Library, want string) (int, error) {
	profiles, err := lib.GetQualityProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("get quality profiles: %w", err)
	}
	if len(profiles) == 0 {
		return 0, fmt.Errorf("radarr has no quality profiles")
	}

	want = strings.TrimSpace(want)
	if want == "" {
		return profiles[0].ID, nil
	}
	if id, err := strconv.Atoi(want); err == nil {
		return id, nil
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if normalizeLabel(p.Name) == normalizeLabel(want) {
			return p.ID, nil
		}
		names = append(names, p.Name)
	}

	if matches := fuzzy.RankFindNormalizedFold(want, names); len(matches) > 0 {
		sort.Sort(matches)
		return 0, fmt.Errorf("quality profile %q not found in radarr (did you mean %q?)", want, matches[0].Target)
	}
	return 0, fmt.Errorf("quality profile %q not found in radarr", want)
}

// ResolveTags maps a comma-separated list of tag names or ids to tag
// ids, creating missing tags by name. The result is deduplicated
// preserving first-seen order.
func ResolveTags(ctx context.Context, lib Library, raw string) ([]int, error) {
	tokens := splitTags(raw)
	if len(tokens) == 0 {
		return nil, nil
	}

	existing, err := lib.GetTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	labelToID := make(map[string]int, len(existing))
	for _, t := range existing {
		labelToID[normalizeLabel(t.Label)] = t.ID
	}

	var resolved []int
	for _, tok := range tokens {
		if id, err := strconv.Atoi(tok); err == nil {
			resolved = append(resolved, id)
			continue
		}

		key := normalizeLabel(tok)
		if id, ok := labelToID[key]; ok {
			resolved = append(resolved, id)
			continue
		}

		created, err := lib.CreateTag(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("create tag %q: %w", tok, err)
		}
		resolved = append(resolved, created.ID)
		labelToID[key] = created.ID
	}

	seen := make(map[int]struct{}, len(resolved))
	out := resolved[:0]
	for _, id := range resolved {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func splitTags(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
