package wws

// Share divides the points of an amenity over the households that share it.
// A nil count means the amenity is private and the points are returned as is.
func Share(points float64, sharers *int) (float64, error) {
	if sharers == nil {
		return points, nil
	}
	if *sharers < 2 {
		return 0, ErrInvalidSharers
	}
	return points / float64(*sharers), nil
}

func sharerCount(sharers *int) int {
	if sharers == nil {
		return 0
	}
	return *sharers
}
