package prune

import "path/filepath"

const phpExt = ".php"

// Pass is one reconcile run: a directory and the naming convention its
// generated files follow.
type Pass struct {
	Dir       string
	Prefixes  []string
	Postfixes []string
}

// DefaultPasses returns the seven fixed passes over a symfony lib directory.
func DefaultPasses(libDir string) []Pass {
	modelDir := filepath.Join(libDir, "model")
	formDir := filepath.Join(libDir, "form")
	filterDir := filepath.Join(libDir, "filter")
	base := []string{"Base"}
	return []Pass{
		{Dir: modelDir, Postfixes: []string{"Peer", "Query"}},
		{Dir: filepath.Join(modelDir, "map"), Postfixes: []string{"TableMap"}},
		{Dir: formDir, Postfixes: []string{"Form.class"}},
		{Dir: filterDir, Postfixes: []string{"FormFilter.class"}},
		{Dir: filepath.Join(modelDir, "om"), Prefixes: base, Postfixes: []string{"Peer", "Query"}},
		{Dir: filepath.Join(formDir, "base"), Prefixes: base, Postfixes: []string{"Form.class"}},
		{Dir: filepath.Join(filterDir, "base"), Prefixes: base, Postfixes: []string{"FormFilter.class"}},
	}
}

// ExpectedFiles returns the file names a pass expects to find.
//
// The stem list starts as the table names. Every prefix is applied to the
// input table names only. Every postfix is then applied to a snapshot of
// the stem list as it stands when that postfix starts, so a later postfix
// also sees stems produced by earlier ones: with postfixes Peer and Query,
// "BlogPostPeerQuery" is expected as well. Each stem gets the .php extension.
func ExpectedFiles(tables, prefixes, postfixes []string) map[string]struct{} {
	stems := make([]string, 0, len(tables)*(1+len(prefixes)))
	stems = append(stems, tables...)
	for _, prefix := range prefixes {
		for _, name := range tables {
			stems = append(stems, prefix+name)
		}
	}
	for _, postfix := range postfixes {
		snapshot := stems[:len(stems):len(stems)]
		for _, name := range snapshot {
			stems = append(stems, name+postfix)
		}
	}

	expected := make(map[string]struct{}, len(stems))
	for _, stem := range stems {
		expected[withExt(stem)] = struct{}{}
	}
	return expected
}

func withExt(stem string) string {
	return stem + phpExt
}
