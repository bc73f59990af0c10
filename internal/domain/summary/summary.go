package summary

// Line is one flattened leaf occurrence. Repeated leaves are kept as separate lines.
type Line struct {
	Name     string
	Quantity float64
}

type Summary struct {
	Name      string
	BuildTime float64
	Resources []Line
	// Dangling lists references that resolved to nothing, in traversal order.
	Dangling []string
}

func (s *Summary) HasDangling() bool {
	return len(s.Dangling) > 0
}
