package outline

import "strings"

// ShopDrawings is the category whose itemized children are not rows of
// their own.
const ShopDrawings = "Shop Drawings"

// FilterCategory drops snapshots deeper than the type level whose category
// contains category. Shallower snapshots always pass.
func FilterCategory(snaps []Snapshot, category string) []Snapshot {
	out := make([]Snapshot, 0, len(snaps))
	for _, s := range snaps {
		if s.Depth() > int(LevelType)+1 {
			if c, ok := s.Category(); ok && strings.Contains(c, category) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// SelectLeaves keeps each snapshot that the next one does not extend.
// The last snapshot only serves as a successor.
func SelectLeaves(snaps []Snapshot) []Snapshot {
	var leaves []Snapshot
	for i := 0; i+1 < len(snaps); i++ {
		if snaps[i].Depth() >= snaps[i+1].Depth() {
			leaves = append(leaves, snaps[i])
		}
	}
	return leaves
}
