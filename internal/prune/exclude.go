package prune

import "strings"

// BaseExcludes are never deleted: generated form and filter base classes
// that have no table of their own.
var BaseExcludes = []string{"BaseForm.class.php", "BaseFormPropel.class.php", "BaseFormFilterPropel.class.php"} //nolint:gochecknoglobals

// ExcludeSet merges BaseExcludes with a space-delimited list of extra file
// names.
func ExcludeSet(extra string) map[string]struct{} {
	fields := strings.Fields(extra)
	set := make(map[string]struct{}, len(BaseExcludes)+len(fields))
	for _, name := range BaseExcludes {
		set[name] = struct{}{}
	}
	for _, name := range fields {
		set[name] = struct{}{}
	}
	return set
}
