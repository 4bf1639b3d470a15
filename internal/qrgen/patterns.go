package qrgen

// alignmentCenters lists alignment pattern centre coordinates per version (index = version).
var alignmentCenters = [...][]int{
	{}, {},
	{6, 18}, {6, 22}, {6, 26}, {6, 30}, {6, 34},
	{6, 22, 38}, {6, 24, 42}, {6, 26, 46}, {6, 28, 50}, {6, 30, 54}, {6, 32, 58}, {6, 34, 62},
	{6, 26, 46, 66}, {6, 26, 48, 70}, {6, 26, 50, 74}, {6, 30, 54, 78}, {6, 30, 56, 82}, {6, 30, 58, 86}, {6, 34, 62, 90},
	{6, 28, 50, 72, 94}, {6, 26, 50, 74, 98}, {6, 30, 54, 78, 102}, {6, 28, 54, 80, 106}, {6, 32, 58, 84, 110}, {6, 30, 58, 86, 114}, {6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122}, {6, 30, 54, 78, 102, 126}, {6, 26, 52, 78, 104, 130}, {6, 30, 56, 82, 108, 134}, {6, 34, 60, 86, 112, 138}, {6, 30, 58, 86, 114, 142}, {6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, {6, 24, 50, 76, 102, 128, 154}, {6, 28, 54, 80, 106, 132, 158}, {6, 32, 58, 84, 110, 136, 162}, {6, 26, 54, 82, 110, 138, 166}, {6, 30, 58, 86, 114, 142, 170},
}

// isFunctionModule reports whether (row, col) belongs to a finder pattern with its
// separator, a timing line, or an alignment pattern.
func isFunctionModule(version, row, col int) bool {
	n := symbolSize(version)
	switch {
	case row < 8 && col < 8, row < 8 && col >= n-8, row >= n-8 && col < 8:
		return true
	case row == 6 || col == 6:
		return true
	}

	if version < 2 || version >= len(alignmentCenters) {
		return false
	}
	centers := alignmentCenters[version]
	last := centers[len(centers)-1]
	for _, cy := range centers {
		for _, cx := range centers {
			// these three overlap the finders
			if (cy == 6 && cx == 6) || (cy == 6 && cx == last) || (cy == last && cx == 6) {
				continue
			}
			if abs(row-cy) <= 2 && abs(col-cx) <= 2 {
				return true
			}
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
