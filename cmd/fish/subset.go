package fish

// Subset returns the points of every row whose species equals species,
// in table order. The match is exact and the group field is ignored; callers
// pass a table already split by group. Rows carrying a non-finite point are
// dropped.
func Subset(table Table, species Species) []Point {
	var points []Point
	for _, row := range table {
		if row.Species != species || !row.Point.Valid() {
			continue
		}
		points = append(points, row.Point)
	}
	return points
}

// SubsetRows is Subset keeping whole observations, so the i-th row matches
// the i-th point Subset returns.
func SubsetRows(table Table, species Species) Table {
	var rows Table
	for _, row := range table {
		if row.Species != species || !row.Point.Valid() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
