package content

import "sort"

// ExtractTags returns the sorted, deduplicated #Tags of a body (property
// block already removed). Tags feed both the taxonomy links in the body and
// the tags list in front matter.
func ExtractTags(body string) []string {
	seen := map[string]struct{}{}
	for _, m := range tagRe.FindAllStringSubmatch(body, -1) {
		seen[m[2]] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
