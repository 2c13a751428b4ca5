package lowzip

import "github.com/bmatcuk/doublestar/v4"

// Glob returns the names of every central-directory entry matching pattern
// (doublestar syntax: "**" matches across "/" separators, unlike path/filepath's
// "*"), in central-directory order. Grounded on BeHierarchic's path.go, which
// uses doublestar.MatchUnvalidated for the same entry-name-matching purpose.
func (d *Decoder) Glob(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, ErrBadPattern
	}

	var names []string
	err := d.walkCentralDir(func(_ uint32, name []byte) error {
		if ok, matchErr := doublestar.Match(pattern, string(name)); matchErr == nil && ok {
			names = append(names, string(name))
		}
		return nil
	})
	return names, err
}
